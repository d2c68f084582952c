package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	ID        int64   `json:"id" validate:"id"`
	FirstName string  `json:"first_name" validate:"name100"`
	LastName  *string `json:"last_name" validate:"omitnil,name100"`
	Email     *string `json:"email" validate:"omitnil,max=100,email"`
	Code      string  `json:"code" validate:"required,max=3"`
	Page      int     `json:"page" validate:"gte=1"`
}

func strp(s string) *string { return &s }

func TestValidate_OK(t *testing.T) {
	s := sample{ID: 1, FirstName: "A", Email: strp("a@mail.com"), Code: "abc", Page: 1}
	if err := Validate(s); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	s := sample{ID: 0, FirstName: "", LastName: strp(""), Email: strp(""), Code: "abcd", Page: 0}
	err := Validate(s)
	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	for _, f := range []string{"id", "first_name", "last_name", "email", "code", "page"} {
		if _, ok := ve.Fields[f]; !ok {
			t.Errorf("missing field error for %q in %v", f, ve.Fields)
		}
	}
	if ve.Fields["email"] != "must be a valid email" {
		t.Errorf("unexpected email message %q", ve.Fields["email"])
	}
	if ve.Fields["id"] != "must be a positive id" {
		t.Errorf("unexpected id message %q", ve.Fields["id"])
	}
	if ve.Fields["page"] != "must be greater than or equal to 1" {
		t.Errorf("unexpected page message %q", ve.Fields["page"])
	}
	if !strings.HasPrefix(err.Error(), "validation error: code ") {
		t.Errorf("error string should list fields in order, got %q", err.Error())
	}
}

func TestValidate_NilOptionalsSkipped(t *testing.T) {
	s := sample{ID: 3, FirstName: "A", Code: "x", Page: 2}
	if err := Validate(s); err != nil {
		t.Fatalf("nil optional fields should pass, got %v", err)
	}
}

func TestToDetails(t *testing.T) {
	if ToDetails(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	var dst struct {
		Page int `json:"page"`
	}
	err := json.Unmarshal([]byte(`{"page":"one"}`), &dst)
	d := ToDetails(err)
	if _, ok := d["page"]; !ok {
		t.Fatalf("expected page detail, got %v", d)
	}

	err = json.Unmarshal([]byte(`{`), &dst)
	if d := ToDetails(err); d["payload"] == "" {
		t.Fatalf("expected payload detail for malformed json, got %v", d)
	}

	ve := Validate(sample{})
	if d := ToDetails(ve); d["code"] != "is required" {
		t.Fatalf("expected code required, got %v", d)
	}

	if d := ToDetails(errors.New("boom")); d["payload"] != "invalid payload" {
		t.Fatalf("unexpected fallback %v", d)
	}
}
