package entity

import (
	"testing"

	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
	"github.com/milk9111/doorsim/prefabs"
)

func TestNewDoorFromSpec(t *testing.T) {
	cases := []struct {
		name    string
		spec    prefabs.DoorSpec
		wantErr bool
		typ     component.DoorType
	}{
		{
			name: "valid_double_swinging",
			spec: prefabs.DoorSpec{
				Name: "hall", Type: "double_swinging", Swing: 1.5708,
				Length: 2.0, Height: 2.0, Thickness: 0.05,
			},
			typ: component.DoubleSwinging,
		},
		{
			name:    "unknown_type",
			spec:    prefabs.DoorSpec{Name: "bad", Type: "revolving", Swing: 1.0},
			wantErr: true,
		},
		{
			name:    "missing_name",
			spec:    prefabs.DoorSpec{Type: "single_sliding", Swing: 1.0},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := NewDoorFromSpec(w, c.spec)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDoorFromSpec: %v", err)
			}

			door, ok := ecs.Get(w, e, component.DoorComponent)
			if !ok {
				t.Fatalf("door entity missing door component")
			}
			if door.Type != c.typ || door.Name != c.spec.Name {
				t.Fatalf("door = %+v, want type %v name %q", door, c.typ, c.spec.Name)
			}
			if !ecs.Has(w, e, component.TransformComponent) {
				t.Fatalf("door entity missing transform")
			}
			if ecs.Has(w, e, component.DoorResolvedComponent) {
				t.Fatalf("new door must be unresolved until the spawn pass runs")
			}
		})
	}
}
