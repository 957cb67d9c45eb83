package models

import "testing"

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(StatusSelecting); got != "셀렉 중" {
		t.Fatalf("unexpected label: %s", got)
	}
	// 모르는 상태값은 그대로 돌려준다
	if got := StatusLabel(ProjectStatus("archived")); got != "archived" {
		t.Fatalf("unexpected fallback: %s", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []ProjectStatus{StatusPreparing, StatusSelecting, StatusConfirmed, StatusEditing} {
		if !IsValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if IsValidStatus("deleted") {
		t.Error("deleted should not be valid")
	}
}

func TestIsValidColorTag(t *testing.T) {
	for _, c := range []ColorTag{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple} {
		if !IsValidColorTag(c) {
			t.Errorf("%s should be valid", c)
		}
	}
	if IsValidColorTag("magenta") {
		t.Error("magenta should not be valid")
	}
}

func TestIsValidLogAction(t *testing.T) {
	for _, a := range []LogAction{ActionCreated, ActionUploaded, ActionSelecting, ActionConfirmed, ActionEditing} {
		if !IsValidLogAction(a) {
			t.Errorf("%s should be valid", a)
		}
	}
	if IsValidLogAction("deleted") {
		t.Error("deleted should not be valid")
	}
}
