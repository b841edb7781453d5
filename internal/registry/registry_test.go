package registry

import "testing"

func testPack(id string) Pack {
	return Pack{
		ID:    id,
		Title: "Test " + id,
		Levels: []Level{
			{Name: "one", Plan: []string{"@o", "xx"}},
			{Name: "two", Plan: []string{"o@", "xx"}},
		},
	}
}

func TestRegisterAndCreate(t *testing.T) {
	id := "test-register"
	Register(id, func() Pack { return testPack(id) })
	defer Unregister(id)

	if !Exists(id) {
		t.Fatalf("pack %q should exist", id)
	}

	p, err := Create(id)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Title != "Test "+id || len(p.Levels) != 2 {
		t.Errorf("unexpected pack %+v", p)
	}

	var found bool
	for _, info := range List() {
		if info.ID == id {
			found = true
			if info.Levels != 2 {
				t.Errorf("info.Levels = %d, want 2", info.Levels)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered pack")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	id := "test-duplicate"
	Register(id, func() Pack { return testPack(id) })
	defer Unregister(id)

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register(id, func() Pack { return testPack(id) })
}

func TestRegisterPack(t *testing.T) {
	p := testPack("test-loaded")
	if err := RegisterPack(p); err != nil {
		t.Fatalf("RegisterPack: %v", err)
	}
	defer Unregister(p.ID)

	if err := RegisterPack(p); err == nil {
		t.Error("RegisterPack should reject a duplicate id")
	}
	if err := RegisterPack(Pack{}); err == nil {
		t.Error("RegisterPack should reject an empty id")
	}

	// Callers get their own copy.
	got, _ := Create(p.ID)
	got.Levels[0].Plan[0] = "changed"
	again, _ := Create(p.ID)
	if again.Levels[0].Plan[0] != "@o" {
		t.Error("Create should return an independent copy")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-pack"); err == nil {
		t.Error("Create should fail for an unknown pack")
	}
	if Unregister("no-such-pack") {
		t.Error("Unregister should report a missing pack")
	}
}
