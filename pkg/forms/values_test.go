package forms

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Values
		wantErr bool
	}{
		{
			name:  "plain strings",
			input: "occurrenceNumber: PR123\nofficerName: J. Smith\n",
			want: Values{
				FieldOccurrenceNumber: "PR123",
				FieldOfficerName:      "J. Smith",
			},
		},
		{
			name:  "scalar coercion",
			input: "lockerNumber: 15\nbagNumber: 12.5\nnotes: true\n",
			want: Values{
				FieldLockerNumber: "15",
				FieldBagNumber:    "12.5",
				FieldNotes:        "true",
			},
		},
		{
			name:  "null degrades to empty",
			input: "officerEmail: null\nofficerPhone: ~\n",
			want: Values{
				FieldOfficerEmail: "",
				FieldOfficerPhone: "",
			},
		},
		{
			name:  "json input",
			input: `{"occurrenceNumber": "PR42", "lockerNumber": 3}`,
			want: Values{
				FieldOccurrenceNumber: "PR42",
				FieldLockerNumber:     "3",
			},
		},
		{
			name:    "nested structure rejected",
			input:   "officer:\n  name: J. Smith\n",
			wantErr: true,
		},
		{
			name:    "not a mapping",
			input:   "- a\n- b\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValues() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseValues() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestLoadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(path, []byte("occurrenceNumber: PR1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	values, err := LoadValues(path)
	if err != nil {
		t.Fatalf("LoadValues: %v", err)
	}
	if values.Get(FieldOccurrenceNumber) != "PR1" {
		t.Errorf("occurrenceNumber = %q", values.Get(FieldOccurrenceNumber))
	}

	if _, err := LoadValues(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValuesNilSafety(t *testing.T) {
	var values Values
	if got := values.Get(FieldNotes); got != "" {
		t.Errorf("nil Values.Get = %q, want empty", got)
	}
	if clone := values.Clone(); clone == nil || len(clone) != 0 {
		t.Errorf("nil Values.Clone = %v, want empty map", clone)
	}
}

func TestErrorsMerge(t *testing.T) {
	errs := Errors{FieldOfficerEmail: "a"}
	errs.Merge(Errors{FieldOfficerPhone: "b", FieldOfficerEmail: "c"})

	if errs[FieldOfficerEmail] != "c" || errs[FieldOfficerPhone] != "b" {
		t.Errorf("merge result = %v", errs)
	}
	if errs.OK() {
		t.Error("OK() should be false with entries present")
	}
	if !(Errors{}).OK() {
		t.Error("OK() should be true for empty mapping")
	}
}
