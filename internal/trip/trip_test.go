package trip

import (
	"errors"
	"testing"
	"time"
)

func TestAttributes_Validate(t *testing.T) {
	tests := []struct {
		name    string
		attrs   Attributes
		wantErr bool
	}{
		{"valid", Attributes{Location: "Oslo", Nights: 3}, false},
		{"single night", Attributes{Location: "Oslo", Nights: 1}, false},
		{"missing location", Attributes{Nights: 3}, true},
		{"zero nights", Attributes{Location: "Oslo"}, true},
		{"negative nights", Attributes{Location: "Oslo", Nights: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.attrs.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAttributes) {
					t.Errorf("Validate() = %v, want ErrInvalidAttributes", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestChecklist_Set(t *testing.T) {
	c := make(Checklist)

	c.Set("clothes", "Socks", &Item{Quantity: 4})
	if c["clothes"]["Socks"].Quantity != 4 {
		t.Fatal("item was not stored")
	}

	// Writing the same name replaces the entry.
	c.Set("clothes", "Socks", &Item{Quantity: 2, Notes: "replaced"})
	if got := c["clothes"]["Socks"]; got.Quantity != 2 || got.Notes != "replaced" {
		t.Errorf("got %+v, want the overwriting entry", got)
	}
}

func TestChecklist_AddCustom(t *testing.T) {
	c := make(Checklist)

	c.AddCustom("electronics", "Drone", 0)

	item := c["electronics"]["Drone"]
	if item == nil {
		t.Fatal("custom item was not added")
	}
	if !item.Custom {
		t.Error("item should be marked custom")
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want floor of 1", item.Quantity)
	}
}

func TestChecklist_Toggle(t *testing.T) {
	c := make(Checklist)
	c.Set("clothes", "Socks", &Item{Quantity: 4})

	if !c.Toggle("clothes", "Socks") {
		t.Fatal("Toggle() = false for an existing item")
	}
	if !c["clothes"]["Socks"].Completed {
		t.Error("item should be completed after one toggle")
	}

	c.Toggle("clothes", "Socks")
	if c["clothes"]["Socks"].Completed {
		t.Error("item should be uncompleted after two toggles")
	}

	if c.Toggle("clothes", "Hat") {
		t.Error("Toggle() = true for a missing item")
	}
	if c.Toggle("nowhere", "Socks") {
		t.Error("Toggle() = true for a missing category")
	}
}

func TestChecklist_SetNote(t *testing.T) {
	c := make(Checklist)
	c.Set("clothes", "Socks", &Item{Quantity: 4})

	if !c.SetNote("clothes", "Socks", "wool ones") {
		t.Fatal("SetNote() = false for an existing item")
	}
	if got := c["clothes"]["Socks"].Notes; got != "wool ones" {
		t.Errorf("notes = %q, want %q", got, "wool ones")
	}

	if c.SetNote("clothes", "Hat", "n/a") {
		t.Error("SetNote() = true for a missing item")
	}
}

func TestChecklist_Progress(t *testing.T) {
	c := make(Checklist)

	completed, total := c.Progress()
	if completed != 0 || total != 0 {
		t.Errorf("empty progress = %d/%d, want 0/0", completed, total)
	}

	c.Set("clothes", "Socks", &Item{Completed: true})
	c.Set("clothes", "Underwear", &Item{})
	c.Set("documents", "Passport/ID", &Item{Completed: true})

	completed, total = c.Progress()
	if completed != 2 || total != 3 {
		t.Errorf("progress = %d/%d, want 2/3", completed, total)
	}
}

func sampleTrip(id, name string) *Trip {
	items := make(Checklist)
	items.Set("clothes", "Socks", &Item{Quantity: 4, Essential: true})
	return &Trip{
		ID:   id,
		Name: name,
		Attributes: Attributes{
			Location:  "Reykjavik",
			Nights:    3,
			TripType:  "camping",
			StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		},
		Items:     items,
		CreatedAt: time.Now(),
	}
}
