package repository

import (
	"sync"
	"testing"

	"smart_hub/internal/models"
)

func TestMemorySettingsStore_GetSet(t *testing.T) {
	s := NewMemorySettingsStore(models.Settings{UserTempC: 25})
	if got := s.Get(); got.ID != models.SettingsID || got.UserTempC != 25 {
		t.Fatalf("unexpected initial settings: %+v", got)
	}

	s.Set(models.Settings{
		ID:          "someone-else",
		UserTempC:   30,
		LightOnUTC:  models.TimeOfDay{Hour: 22},
		LightOffUTC: models.TimeOfDay{Hour: 1},
	})
	got := s.Get()
	if got.ID != models.SettingsID {
		t.Fatalf("id must be stable, got %q", got.ID)
	}
	if got.UserTempC != 30 || got.LightOnUTC.Hour != 22 || got.LightOffUTC.Hour != 1 {
		t.Fatalf("unexpected settings after Set: %+v", got)
	}
}

// Writers always store on/off pairs with off = on+1h; readers must never see a mixed pair.
func TestMemorySettingsStore_NoTornReads(t *testing.T) {
	s := NewMemorySettingsStore(models.Settings{LightOnUTC: models.TimeOfDay{Hour: 0}, LightOffUTC: models.TimeOfDay{Hour: 1}})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				h := (w*7 + i) % 23
				s.Set(models.Settings{LightOnUTC: models.TimeOfDay{Hour: h}, LightOffUTC: models.TimeOfDay{Hour: h + 1}})
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				got := s.Get()
				if got.LightOffUTC.Hour != got.LightOnUTC.Hour+1 {
					t.Errorf("torn read: %+v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
