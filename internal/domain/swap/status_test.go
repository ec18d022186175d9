package swap

import "testing"

func TestCanRespond(t *testing.T) {
	cases := []struct {
		current Status
		ok      bool
	}{
		{StatusPending, true},
		{StatusAccepted, false},
		{StatusRejected, false},
		{Status("garbage"), false},
	}

	for _, tt := range cases {
		err := CanRespond(tt.current)
		if tt.ok && err != nil {
			t.Fatalf("CanRespond(%q) = %v, want nil", tt.current, err)
		}
		if !tt.ok && err != ErrNotPending {
			t.Fatalf("CanRespond(%q) = %v, want ErrNotPending", tt.current, err)
		}
	}
}

func TestClientActionStatus(t *testing.T) {
	cases := []struct {
		action string
		want   Status
		valid  bool
	}{
		{"accept", StatusAccepted, true},
		{"accepted", StatusAccepted, true},
		{"reject", StatusRejected, true},
		{"rejected", StatusRejected, true},
		{"approve", "", false},
		{"", "", false},
		{"ACCEPT", "", false},
	}

	for _, tt := range cases {
		got, err := ClientActionStatus(tt.action)
		if tt.valid {
			if err != nil || got != tt.want {
				t.Fatalf("ClientActionStatus(%q) = (%q, %v), want (%q, nil)", tt.action, got, err, tt.want)
			}
			continue
		}
		if !IsValidation(err) {
			t.Fatalf("ClientActionStatus(%q) err = %v, want validation error", tt.action, err)
		}
	}
}

func TestAdminActionStatus(t *testing.T) {
	cases := []struct {
		action string
		want   Status
		valid  bool
	}{
		{"approve", StatusAccepted, true},
		{"reject", StatusRejected, true},
		{"accept", "", false},
		{"accepted", "", false},
		{"", "", false},
	}

	for _, tt := range cases {
		got, err := AdminActionStatus(tt.action)
		if tt.valid {
			if err != nil || got != tt.want {
				t.Fatalf("AdminActionStatus(%q) = (%q, %v), want (%q, nil)", tt.action, got, err, tt.want)
			}
			continue
		}
		if !IsValidation(err) {
			t.Fatalf("AdminActionStatus(%q) err = %v, want validation error", tt.action, err)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("InitialStatus() = %q, want pending", InitialStatus())
	}
}
