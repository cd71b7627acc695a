package model

import (
	"errors"
	"slices"
	"testing"
)

func TestObservableList_Mutations(t *testing.T) {
	list := NewObservableList[string](nil)

	var changes []Change
	list.SetObserver(ListObserverFunc[string](func(change Change, source Sequence[string]) {
		changes = append(changes, change)
	}))

	if err := list.Append("A"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := list.Append("B"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := list.Insert(0, "C"); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := list.Move(0, 2); err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if err := list.Replace(1, "D"); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	removed, err := list.RemoveAt(0)
	if err != nil {
		t.Fatalf("RemoveAt returned error: %v", err)
	}
	if removed != "A" {
		t.Errorf("RemoveAt returned %s, expected A", removed)
	}

	if got := list.Items(); !slices.Equal(got, []string{"D", "C"}) {
		t.Errorf("Items() = %v, expected [D C]", got)
	}

	expected := []Change{
		addChange(0),
		addChange(1),
		addChange(0),
		moveChange(0, 2),
		replaceChange(1),
		removeChange(0),
	}
	if !slices.Equal(changes, expected) {
		t.Errorf("changes = %v, expected %v", changes, expected)
	}
}

func TestObservableList_InvalidIndices(t *testing.T) {
	list := NewObservableList[int](nil)
	notified := false
	list.SetObserver(ListObserverFunc[int](func(Change, Sequence[int]) { notified = true }))

	if err := list.Insert(1, 7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Insert(1) on empty list: expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := list.RemoveAt(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RemoveAt(0) on empty list: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := list.Move(0, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Move on empty list: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := list.Replace(-1, 7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Replace(-1): expected ErrIndexOutOfRange, got %v", err)
	}
	if notified {
		t.Error("observer must not be notified when a mutation fails")
	}
}

func TestObservableList_MoveToSameIndexIsSilent(t *testing.T) {
	list := NewObservableList[int](nil)
	_ = list.Reset([]int{1, 2, 3})

	notified := false
	list.SetObserver(ListObserverFunc[int](func(Change, Sequence[int]) { notified = true }))

	if err := list.Move(1, 1); err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if notified {
		t.Error("Move to the same index should not notify")
	}
}

func TestObservableList_DuplicateKeys(t *testing.T) {
	list := NewObservableList(func(s string) string { return s })

	if err := list.Append("A"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := list.Append("A"); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
	if err := list.Replace(0, "A"); err != nil {
		t.Errorf("replacing an element with itself should succeed, got %v", err)
	}
	if err := list.Reset([]string{"B", "B"}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID from Reset, got %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("failed Reset must keep content, Len() = %d", list.Len())
	}
}

func TestObservableList_IndexFunc(t *testing.T) {
	list := NewObservableList[int](nil)
	_ = list.Reset([]int{4, 8, 15})

	if idx := list.IndexFunc(func(v int) bool { return v > 5 }); idx != 1 {
		t.Errorf("IndexFunc = %d, expected 1", idx)
	}
	if idx := list.IndexFunc(func(v int) bool { return v > 100 }); idx != -1 {
		t.Errorf("IndexFunc = %d, expected -1", idx)
	}
}

func TestChangeAction_String(t *testing.T) {
	tests := []struct {
		action   ChangeAction
		expected string
	}{
		{ChangeAdd, "Add"},
		{ChangeRemove, "Remove"},
		{ChangeReplace, "Replace"},
		{ChangeMove, "Move"},
		{ChangeReset, "Reset"},
		{ChangeAction(42), "ChangeAction(42)"},
	}

	for _, test := range tests {
		if result := test.action.String(); result != test.expected {
			t.Errorf("ChangeAction(%d).String() = %s, expected %s", int(test.action), result, test.expected)
		}
	}
}

func TestObservableList_ClearReleasesElements(t *testing.T) {
	list := NewObservableList[*Item](nil)
	_ = list.Append(NewItem("a", "", "", "", "", ""))
	_ = list.Append(NewItem("b", "", "", "", "", ""))

	list.Clear()

	for i, it := range list.items[:2] {
		if it != nil {
			t.Errorf("slot %d still holds %s after Clear", i, it.ID())
		}
	}
}
