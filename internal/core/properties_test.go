package core_test

import (
	"errors"
	"strings"
	"testing"

	"lelyo-go/internal/core"
	"lelyo-go/internal/testutil"
)

func TestPropertyRegistry_Validate(t *testing.T) {
	gw := testutil.NewTestGateway()
	r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(true), core.NewNopLogger())

	tests := []struct {
		name       string
		draft      core.PropertyDraft
		wantFields []string
	}{
		{
			name:       "empty name",
			draft:      core.PropertyDraft{Name: "", Address: "1 rue de la Paix"},
			wantFields: []string{"name"},
		},
		{
			name:       "whitespace-only address",
			draft:      core.PropertyDraft{Name: "Villa Azur", Address: "   "},
			wantFields: []string{"address"},
		},
		{
			name:       "both missing",
			draft:      core.PropertyDraft{},
			wantFields: []string{"name", "address"},
		},
		{
			name:       "valid draft",
			draft:      core.PropertyDraft{Name: "Villa Azur", Address: "1 rue de la Paix"},
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := r.Validate(tt.draft)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() = %v, want keys %v", errs, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := errs[f]; !ok {
					t.Errorf("Validate() missing key %q: %v", f, errs)
				}
			}
		})
	}
}

func TestPropertyRegistry_Create(t *testing.T) {
	t.Run("invalid draft short-circuits before the gateway", func(t *testing.T) {
		gw := testutil.NewTestGateway()
		r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(true), core.NewNopLogger())

		err := r.Create(core.PropertyDraft{Name: "", Address: ""}, nil)

		var verr *core.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Create() error = %v, want *ValidationError", err)
		}
		if len(verr.Fields) != 2 {
			t.Errorf("Fields = %v, want name and address", verr.Fields)
		}
		if calls := gw.Calls(); len(calls) != 0 {
			t.Errorf("gateway calls = %v, want none", calls)
		}
	})

	t.Run("creates without an image", func(t *testing.T) {
		gw := testutil.NewTestGateway()
		r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(true), core.NewNopLogger())

		if err := r.Create(core.PropertyDraft{Name: "Villa Azur", Address: "1 rue de la Paix"}, nil); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		props, err := r.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(props) != 1 || props[0].Name != "Villa Azur" {
			t.Errorf("List() = %+v, want the created property", props)
		}
	})

	t.Run("uploads the image before creating", func(t *testing.T) {
		gw := testutil.NewTestGateway()
		r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(true), core.NewNopLogger())

		image := &core.ImageUpload{Filename: "villa.jpg", Content: strings.NewReader("jpeg-bytes")}
		if err := r.Create(core.PropertyDraft{Name: "Villa Azur", Address: "1 rue de la Paix"}, image); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		calls := gw.Calls()
		if len(calls) != 2 || calls[0] != "POST /upload" || calls[1] != "POST /properties" {
			t.Fatalf("calls = %v, want upload then create", calls)
		}

		props, _ := r.List()
		if props[0].ImageURL != "/uploads/villa.jpg" {
			t.Errorf("ImageURL = %q, want the uploaded asset URL", props[0].ImageURL)
		}
	})

	t.Run("failed upload aborts the create", func(t *testing.T) {
		gw := &testutil.FailingGateway{}
		r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(true), core.NewNopLogger())

		image := &core.ImageUpload{Filename: "villa.jpg", Content: strings.NewReader("jpeg-bytes")}
		err := r.Create(core.PropertyDraft{Name: "Villa Azur", Address: "1 rue de la Paix"}, image)
		if err == nil {
			t.Fatal("Create() expected error")
		}
		if !strings.Contains(err.Error(), "uploading image") {
			t.Errorf("error = %v, want upload failure wording", err)
		}
		// Only the upload attempt reached the gateway.
		if len(gw.Calls) != 1 || gw.Calls[0] != "POST /upload" {
			t.Errorf("calls = %v, want only the upload attempt", gw.Calls)
		}
	})
}

func TestPropertyRegistry_Delete(t *testing.T) {
	t.Run("prompt names the property", func(t *testing.T) {
		gw := testutil.NewTestGateway()
		seeded := gw.SeedProperty(core.Property{Name: "Villa Azur", Address: "1 rue de la Paix"})

		confirm := testutil.NewStubConfirmer(true)
		r := core.NewPropertyRegistry(gw, confirm, core.NewNopLogger())
		if _, err := r.List(); err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if err := r.Delete(seeded.ID, seeded.Name); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if len(confirm.Prompts) != 1 || !strings.Contains(confirm.Prompts[0], "Villa Azur") {
			t.Errorf("prompts = %v, want the property name in the prompt", confirm.Prompts)
		}
	})

	t.Run("removes the id from the cached listing without a refetch", func(t *testing.T) {
		gw := testutil.NewTestGateway()
		first := gw.SeedProperty(core.Property{Name: "Villa Azur", Address: "1 rue de la Paix"})
		gw.SeedProperty(core.Property{Name: "Chalet Blanc", Address: "2 chemin des Cimes"})

		r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(true), core.NewNopLogger())
		if _, err := r.List(); err != nil {
			t.Fatalf("List() error = %v", err)
		}

		callsBefore := len(gw.Calls())
		if err := r.Delete(first.ID, first.Name); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		listing := r.Listing()
		if len(listing) != 1 || listing[0].Name != "Chalet Blanc" {
			t.Errorf("Listing() = %+v, want only the remaining property", listing)
		}

		calls := gw.Calls()[callsBefore:]
		if len(calls) != 1 || !strings.HasPrefix(calls[0], "DELETE /properties/") {
			t.Errorf("calls = %v, want only the delete, no refetch", calls)
		}
	})

	t.Run("declined delete issues zero gateway calls", func(t *testing.T) {
		gw := testutil.NewTestGateway()
		seeded := gw.SeedProperty(core.Property{Name: "Villa Azur"})

		r := core.NewPropertyRegistry(gw, testutil.NewStubConfirmer(false), core.NewNopLogger())
		err := r.Delete(seeded.ID, seeded.Name)
		if !errors.Is(err, core.ErrDeclined) {
			t.Fatalf("Delete() error = %v, want ErrDeclined", err)
		}
		if calls := gw.Calls(); len(calls) != 0 {
			t.Errorf("gateway calls = %v, want none", calls)
		}
	})
}

func TestResolveName(t *testing.T) {
	props := []core.Property{
		{ID: 5, Name: "Villa Azur"},
		{ID: 7, Name: "Chalet Blanc"},
	}

	if got := core.ResolveName(props, 7); got != "Chalet Blanc" {
		t.Errorf("ResolveName(7) = %q, want %q", got, "Chalet Blanc")
	}
	if got := core.ResolveName(props, 99); got != core.Unresolved {
		t.Errorf("ResolveName(99) = %q, want the placeholder %q", got, core.Unresolved)
	}
	if got := core.ResolveName(nil, 1); got != core.Unresolved {
		t.Errorf("ResolveName(nil, 1) = %q, want the placeholder", got)
	}
}
