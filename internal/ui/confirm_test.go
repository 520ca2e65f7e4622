package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDeleteFlowRemovesAfterConfirmation(t *testing.T) {
	service := newFakeService()
	harness := bootstrappedHarness(t, service)

	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	m := harness.Model()
	if m.mode != ModeConfirm || m.pendingDelete == nil {
		t.Fatalf("expected confirmation prompt")
	}
	if m.pendingDelete.ID != "c-2" {
		t.Fatalf("expected prompt for the cursor row, got %s", m.pendingDelete.ID)
	}
	if len(service.deleted) != 0 {
		t.Fatalf("prompt alone must not delete anything")
	}

	harness.Send(keyRunes("y"))
	m = harness.Model()
	if m.mode != ModeList {
		t.Fatalf("expected list mode after confirmation")
	}
	if len(service.deleted) != 1 || service.deleted[0] != "c-2" {
		t.Fatalf("expected delete call for c-2, got %v", service.deleted)
	}
	if _, ok := m.session.Find("c-2"); ok {
		t.Fatalf("deleted category still in the collection")
	}
	if len(m.list.Rows) != 2 {
		t.Fatalf("expected 2 rows after delete, got %d", len(m.list.Rows))
	}
}

func TestDeleteDeclineLeavesCollectionUntouched(t *testing.T) {
	service := newFakeService()
	harness := bootstrappedHarness(t, service)

	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	harness.Send(keyRunes("n"))

	m := harness.Model()
	if m.mode != ModeList || m.pendingDelete != nil {
		t.Fatalf("expected prompt dismissed")
	}
	if len(service.deleted) != 0 {
		t.Fatalf("declined prompt must not reach the backend")
	}
	if len(m.session.Categories()) != 3 {
		t.Fatalf("collection changed without a delete")
	}
}

func TestDeleteEscDeclines(t *testing.T) {
	service := newFakeService()
	harness := bootstrappedHarness(t, service)

	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	harness.Send(tea.KeyMsg{Type: tea.KeyEsc})

	m := harness.Model()
	if m.mode != ModeList || m.pendingDelete != nil {
		t.Fatalf("expected esc to decline the prompt")
	}
	if harness.Quit() {
		t.Fatalf("esc inside the prompt must not quit the program")
	}
	if len(service.deleted) != 0 {
		t.Fatalf("declined prompt must not reach the backend")
	}
}

func TestDeleteFailureKeepsEntry(t *testing.T) {
	service := newFakeService()
	service.deleteErr = errors.New("boom")
	harness := bootstrappedHarness(t, service)

	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	harness.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m := harness.Model()
	if m.busy {
		t.Fatalf("busy flag must clear after a failed delete")
	}
	if _, ok := m.session.Find("c-2"); !ok {
		t.Fatalf("failed delete must keep the entry")
	}
	if m.currentNotice() != msgDeleteFailed {
		t.Fatalf("expected delete failure notice, got %q", m.currentNotice())
	}
}

func TestDeleteWithEmptyListIsNoop(t *testing.T) {
	service := newFakeService()
	service.categories = nil
	harness := bootstrappedHarness(t, service)

	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	if harness.Model().mode != ModeList {
		t.Fatalf("empty list must not open a prompt")
	}
}
