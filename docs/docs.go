// Package docs registers the Swagger description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Welcome",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/debug_info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Debug snapshot",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DebugInfo"}}}
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Settings"}}}
            },
            "put": {
                "description": "user_light is a UTC time of day or \"sunset\"; the response carries the resolved on time.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update settings",
                "parameters": [
                    {"description": "Settings payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SettingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/device_state_update": {
            "post": {
                "description": "Stores the reading and returns the light and fan command.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["telemetry"],
                "summary": "Report device state",
                "parameters": [
                    {"description": "Sensor reading", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.DeviceStateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ActuatorCommand"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/graph": {
            "get": {
                "produces": ["application/json"],
                "tags": ["telemetry"],
                "summary": "Recent readings",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Number of readings (1..100)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SensorReading"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/logs": {
            "get": {
                "description": "Date-only 'to' is inclusive of the whole day.",
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List audit events",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "description": "End of range", "name": "to", "in": "query"},
                    {"enum": ["SETTINGS_UPDATE", "SUNSET_FALLBACK", "DECISION_ANOMALY"], "type": "string", "description": "Event type", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "Upgrades to a websocket and pushes /debug_info snapshots every interval.",
                "tags": ["system"],
                "summary": "Stream debug snapshots",
                "parameters": [
                    {"type": "string", "example": "2s", "description": "Go duration, up to 10s", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Milliseconds, up to 10000", "name": "interval_ms", "in": "query"}
                ],
                "responses": {}
            }
        }
    },
    "definitions": {
        "handlers.DeviceStateRequest": {
            "type": "object",
            "properties": {
                "presence": {"type": "boolean", "example": true},
                "temperature": {"description": "Celsius, null when the sensor failed", "type": "number", "example": 26.5}
            }
        },
        "handlers.SettingsRequest": {
            "type": "object",
            "properties": {
                "light_duration": {"description": "Light on duration, e.g. \"2h\", \"1h30m\", \"45m10s\"", "type": "string", "example": "4h"},
                "user_light": {"description": "\"HH:MM:SS\" (UTC) or \"sunset\"", "type": "string", "example": "sunset"},
                "user_temp": {"description": "Fan threshold in Celsius", "type": "number", "example": 25}
            }
        },
        "handlers.SettingsResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string", "example": "default_settings_id_123"},
                "light_time_off": {"type": "string", "example": "22:00:00"},
                "user_light": {"type": "string", "example": "18:00:00"},
                "user_temp": {"type": "number", "example": 25}
            }
        },
        "models.ActuatorCommand": {
            "type": "object",
            "properties": {
                "fan_on": {"type": "boolean"},
                "light_on": {"type": "boolean"}
            }
        },
        "models.SensorReading": {
            "type": "object",
            "properties": {
                "datetime": {"type": "string", "example": "2025-07-14T19:00:00Z"},
                "presence": {"type": "boolean"},
                "temperature": {"type": "number"}
            }
        },
        "models.Settings": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "light_duration_input": {"type": "string"},
                "light_time_off_actual_utc": {"type": "string"},
                "light_time_on_actual_utc": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_light_input": {"type": "string"},
                "user_temp": {"type": "number"}
            }
        },
        "service.DebugInfo": {
            "type": "object",
            "properties": {
                "current_system_settings": {"$ref": "#/definitions/models.Settings"},
                "current_utc_time": {"type": "string"},
                "last_command": {"$ref": "#/definitions/models.ActuatorCommand"},
                "latest_sensor_reading_for_graph": {"$ref": "#/definitions/models.SensorReading"},
                "sensor_history_count": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Simple Smart Hub API",
	Description:      "Sensor telemetry, light and fan decisions, and schedule settings for a single smart hub.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
