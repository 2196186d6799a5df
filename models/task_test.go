package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	before := time.Now().Truncate(time.Second)
	task := NewTask("  buy milk ")
	after := time.Now()

	if task.Description != "  buy milk " {
		t.Errorf("description should be kept verbatim, got %q", task.Description)
	}
	if task.CreatedAt.Before(before) || task.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v not within [%v, %v]", task.CreatedAt, before, after)
	}
	if task.CreatedAt.Nanosecond() != 0 {
		t.Errorf("CreatedAt should have second precision, got %v", task.CreatedAt)
	}
}

func TestTask_MarshalJSON(t *testing.T) {
	task := Task{
		Description: "write report",
		CreatedAt:   time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local),
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"description":"write report","date":"2024-03-09 07:05:01"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestTask_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Task
		wantErr bool
	}{
		{
			name:  "valid task",
			input: `{"description":"call mom","date":"2023-12-31 23:59:59"}`,
			want: Task{
				Description: "call mom",
				CreatedAt:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.Local),
			},
		},
		{
			name:  "empty description is allowed",
			input: `{"description":"","date":"2023-12-31 23:59:59"}`,
			want: Task{
				CreatedAt: time.Date(2023, 12, 31, 23, 59, 59, 0, time.Local),
			},
		},
		{
			name:    "missing description",
			input:   `{"date":"2023-12-31 23:59:59"}`,
			wantErr: true,
		},
		{
			name:    "missing date",
			input:   `{"description":"call mom"}`,
			wantErr: true,
		},
		{
			name:    "description not a string",
			input:   `{"description":42,"date":"2023-12-31 23:59:59"}`,
			wantErr: true,
		},
		{
			name:    "date not a string",
			input:   `{"description":"call mom","date":1700000000}`,
			wantErr: true,
		},
		{
			name:    "date in RFC3339",
			input:   `{"description":"call mom","date":"2023-12-31T23:59:59Z"}`,
			wantErr: true,
		},
		{
			name:    "date with fraction",
			input:   `{"description":"call mom","date":"2023-12-31 23:59:59.5"}`,
			wantErr: true,
		},
		{
			name:    "date with nanoseconds",
			input:   `{"description":"call mom","date":"2023-12-31 23:59:59.000000001"}`,
			wantErr: true,
		},
		{
			name:    "single-digit month",
			input:   `{"description":"call mom","date":"2023-1-31 23:59:59"}`,
			wantErr: true,
		},
		{
			name:    "plain string",
			input:   `"call mom"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Task
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got task %+v", got)
				}
				if !errors.Is(err, ErrFormat) {
					t.Errorf("expected ErrFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Description != tt.want.Description {
				t.Errorf("Description = %q, want %q", got.Description, tt.want.Description)
			}
			if !got.CreatedAt.Equal(tt.want.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, tt.want.CreatedAt)
			}
		})
	}
}

func TestTask_RoundTrip(t *testing.T) {
	original := NewTask("pay rent")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded Task
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Description != original.Description || !decoded.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestTask_Render(t *testing.T) {
	task := Task{
		Description: "water plants",
		CreatedAt:   time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local),
	}

	got := task.Render()
	want := "Monday, January 15, 2024 09:30:00 water plants"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if strings.Contains(got, "2024-01-15") {
		t.Error("Render() should not use the storage date layout")
	}
}

func TestTask_UnmarshalJSON_ZoneIndependent(t *testing.T) {
	prev := time.Local
	defer func() { time.Local = prev }()

	inputs := []string{
		`{"description":"epoch","date":"0001-01-01 00:00:00"}`,
		`{"description":"dst gap","date":"2024-03-10 02:30:00"}`,
	}
	zones := []*time.Location{time.UTC, time.FixedZone("EST", -5*3600), time.FixedZone("JST", 9*3600)}
	if ny, err := time.LoadLocation("America/New_York"); err == nil {
		zones = append(zones, ny)
	}

	for _, zone := range zones {
		time.Local = zone
		for _, input := range inputs {
			var task Task
			if err := json.Unmarshal([]byte(input), &task); err != nil {
				t.Errorf("zone %s: unexpected error for %s: %v", zone, input, err)
			}
		}
	}
}

func TestTask_MarshalJSON_NoHTMLEscape(t *testing.T) {
	task := Task{
		Description: `fix <b> & "quotes"`,
		CreatedAt:   time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local),
	}

	data, err := task.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	want := `{"description":"fix <b> & \"quotes\"","date":"2024-03-09 07:05:01"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
