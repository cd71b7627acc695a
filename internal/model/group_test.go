package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
)

type stubResolver struct {
	calls int
	err   error
}

func (r *stubResolver) ResolveImage(path string) (fyne.Resource, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return fyne.NewStaticResource(path, []byte(path)), nil
}

func itemIDs(items []*Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	return ids
}

func TestGroup_TopItemsCappedAtLimit(t *testing.T) {
	group := NewGroup("Group-1", "Directives", "", "", "")

	for i := 1; i <= 20; i++ {
		item := NewItem(fmt.Sprintf("Group-1-Item-%d", i), "", "", "", "", "")
		if err := group.AddItem(item); err != nil {
			t.Fatalf("AddItem returned error: %v", err)
		}
	}

	if group.TopItems().Len() != TopItemsLimit {
		t.Fatalf("TopItems().Len() = %d, expected %d", group.TopItems().Len(), TopItemsLimit)
	}
	want := itemIDs(group.Items().Items()[:TopItemsLimit])
	if got := itemIDs(group.TopItems().Items()); !slices.Equal(got, want) {
		t.Errorf("TopItems = %v, expected %v", got, want)
	}
}

func TestGroup_StampsGroupID(t *testing.T) {
	group := NewGroup("Group-2", "Executions", "", "", "")
	item := NewItem("Group-2-Item-1", "Art Deco Style", "", "", "", "")

	if err := group.AddItem(item); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if item.GroupID() != "Group-2" {
		t.Errorf("GroupID() = %q, expected Group-2", item.GroupID())
	}

	replacement := NewItem("Group-2-Item-9", "", "", "", "", "")
	if err := group.Items().Replace(0, replacement); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if replacement.GroupID() != "Group-2" {
		t.Errorf("replacement GroupID() = %q, expected Group-2", replacement.GroupID())
	}

	reset := []*Item{NewItem("a", "", "", "", "", ""), NewItem("b", "", "", "", "", "")}
	if err := group.Items().Reset(reset); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	for _, it := range reset {
		if it.GroupID() != "Group-2" {
			t.Errorf("item %s GroupID() = %q after Reset", it.ID(), it.GroupID())
		}
	}
}

func TestGroup_RejectsDuplicateItemIDs(t *testing.T) {
	group := NewGroup("g", "", "", "", "")
	if err := group.AddItem(NewItem("x", "", "", "", "", "")); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := group.AddItem(NewItem("x", "", "", "", "", "")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
	if group.TopItems().Len() != 1 {
		t.Errorf("TopItems().Len() = %d, expected 1", group.TopItems().Len())
	}
}

func TestGroup_FindItem(t *testing.T) {
	group := NewGroup("g", "", "", "", "")
	_ = group.AddItem(NewItem("x", "Residential", "", "", "", ""))

	item, ok := group.FindItem("x")
	if !ok || item.Title() != "Residential" {
		t.Errorf("FindItem(x) = %v, %v", item, ok)
	}
	if _, ok := group.FindItem("missing"); ok {
		t.Error("FindItem(missing) should fail")
	}
}

func TestNewItem_GeneratesID(t *testing.T) {
	a := NewItem("", "", "", "", "", "")
	b := NewItem("", "", "", "", "", "")

	if a.ID() == b.ID() {
		t.Error("Expected different generated IDs")
	}
	if !strings.HasPrefix(a.ID(), "item-") {
		t.Errorf("Expected ID to start with 'item-', got: %s", a.ID())
	}
	if len(a.ID()) != len("item-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("item-")+36, len(a.ID()), a.ID())
	}

	g := NewGroup("", "", "", "", "")
	if !strings.HasPrefix(g.ID(), "group-") {
		t.Errorf("Expected group ID to start with 'group-', got: %s", g.ID())
	}
}

func TestCommon_SetPropertyNotifiesOnChange(t *testing.T) {
	item := NewItem("i", "Designers", "", "", "", "")

	var changed []string
	item.SetChangeCallback(func(property string) {
		changed = append(changed, property)
	})

	item.SetTitle("Designers")
	item.SetTitle("Speciality")
	item.SetSubtitle("sub")
	item.SetDescription("desc")
	item.SetContent("body")
	item.SetContent("body")

	expected := []string{PropertyTitle, PropertySubtitle, PropertyDescription, PropertyContent}
	if !slices.Equal(changed, expected) {
		t.Errorf("changed = %v, expected %v", changed, expected)
	}
	if item.String() != "Speciality" {
		t.Errorf("String() = %q, expected Speciality", item.String())
	}
}

func TestCommon_ImageIsResolvedOnce(t *testing.T) {
	resolver := &stubResolver{}
	item := NewItem("i", "", "", "Assets/HubPage/HubPage1.png", "", "")
	item.SetImageResolver(resolver)

	for range 3 {
		res, err := item.Image()
		if err != nil {
			t.Fatalf("Image returned error: %v", err)
		}
		if res == nil || res.Name() != "Assets/HubPage/HubPage1.png" {
			t.Fatalf("Image() = %v", res)
		}
	}
	if resolver.calls != 1 {
		t.Errorf("resolver called %d times, expected 1", resolver.calls)
	}

	var changed []string
	item.SetChangeCallback(func(property string) { changed = append(changed, property) })

	item.SetImagePath("Assets/HubPage/HubPage2.png")
	res, err := item.Image()
	if err != nil || res.Name() != "Assets/HubPage/HubPage2.png" {
		t.Errorf("Image() after SetImagePath = %v, %v", res, err)
	}
	if resolver.calls != 2 {
		t.Errorf("resolver called %d times, expected 2", resolver.calls)
	}

	direct := fyne.NewStaticResource("direct.png", nil)
	item.SetImage(direct)
	if item.ImagePath() != "" {
		t.Errorf("ImagePath() = %q after SetImage, expected empty", item.ImagePath())
	}
	if res, _ := item.Image(); res != direct {
		t.Errorf("Image() = %v, expected the directly set resource", res)
	}
	if !slices.Equal(changed, []string{PropertyImage, PropertyImage}) {
		t.Errorf("changed = %v", changed)
	}
}

func TestCommon_ImageErrors(t *testing.T) {
	resolver := &stubResolver{err: errors.New("not found")}
	item := NewItem("i", "", "", "missing.png", "", "")

	if res, err := item.Image(); res != nil || err != nil {
		t.Errorf("Image() without resolver = %v, %v; expected nil, nil", res, err)
	}

	item.SetImageResolver(resolver)
	if _, err := item.Image(); err == nil {
		t.Error("Expected resolver error to be returned")
	}
	if _, err := item.Image(); err == nil {
		t.Error("Failed resolution must not be cached")
	}
	if resolver.calls != 2 {
		t.Errorf("resolver called %d times, expected 2", resolver.calls)
	}
}

func TestCommon_NewResolverDropsCachedImage(t *testing.T) {
	first, second := &stubResolver{}, &stubResolver{}
	item := NewItem("i", "", "", "a.png", "", "")

	item.SetImageResolver(first)
	_, _ = item.Image()
	item.SetImageResolver(second)
	_, _ = item.Image()

	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, expected 1/1", first.calls, second.calls)
	}

	direct := fyne.NewStaticResource("direct.png", nil)
	item.SetImage(direct)
	item.SetImageResolver(first)
	if res, _ := item.Image(); res != direct {
		t.Errorf("Image() = %v, a directly set image must survive a resolver change", res)
	}
}

func TestItem_SetIDKeepsGroupIDsUnique(t *testing.T) {
	group := NewGroup("g", "", "", "", "")
	a := NewItem("a", "", "", "", "", "")
	b := NewItem("b", "", "", "", "", "")
	_ = group.AddItem(a)
	_ = group.AddItem(b)

	if err := b.SetID("a"); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if got := itemIDs(group.Items().Items()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("ids = %v, expected [a b]", got)
	}

	if err := b.SetID("c"); err != nil {
		t.Fatalf("SetID(c) returned error: %v", err)
	}
	if err := b.SetID("c"); err != nil {
		t.Errorf("renaming to the current id should succeed, got %v", err)
	}
	if found, ok := group.FindItem("c"); !ok || found != b {
		t.Errorf("FindItem(c) = %v, %v", found, ok)
	}
	if err := group.AddItem(NewItem("b", "", "", "", "", "")); err != nil {
		t.Errorf("old id b should be free again, got %v", err)
	}

	// Once removed, the item is free to take any id
	removed, _ := group.Items().RemoveAt(0)
	if err := removed.SetID("c"); err != nil {
		t.Errorf("SetID on a removed item returned error: %v", err)
	}
}

func TestGroup_ItemsCannotDetachProjection(t *testing.T) {
	group := NewGroupWithLimit("g", "", "", "", "", 3)

	if _, ok := any(group.Items()).(interface {
		SetObserver(ListObserver[*Item])
	}); ok {
		t.Fatal("Items() must not expose SetObserver")
	}

	items := group.Items()
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := items.Append(NewItem(id, "", "", "", "", "")); err != nil {
			t.Fatalf("Append(%s) returned error: %v", id, err)
		}
	}
	_ = items.Insert(0, NewItem("z", "", "", "", "", ""))
	_ = items.Move(4, 1)
	_, _ = items.RemoveAt(2)
	_ = items.Replace(0, NewItem("y", "", "", "", "", ""))

	want := itemIDs(items.Items()[:3])
	if got := itemIDs(group.TopItems().Items()); !slices.Equal(got, want) {
		t.Errorf("TopItems = %v, expected %v", got, want)
	}
}

func TestGroup_GroupIDFollowsMembership(t *testing.T) {
	group := NewGroup("g1", "", "", "", "")
	a := NewItem("a", "", "", "", "", "")
	b := NewItem("b", "", "", "", "", "")
	c := NewItem("c", "", "", "", "", "")
	_ = group.AddItem(a)
	_ = group.AddItem(b)
	_ = group.AddItem(c)

	group.SetID("g2")
	for _, it := range []*Item{a, b, c} {
		if it.GroupID() != "g2" {
			t.Errorf("item %s GroupID() = %q after group rename, expected g2", it.ID(), it.GroupID())
		}
	}

	tests := []struct {
		name   string
		mutate func() error
		item   *Item
	}{
		{"remove", func() error { _, err := group.Items().RemoveAt(0); return err }, a},
		{"replace", func() error { return group.Items().Replace(0, NewItem("d", "", "", "", "", "")) }, b},
		{"reset", func() error { return group.Items().Reset([]*Item{NewItem("e", "", "", "", "", "")}) }, c},
	}

	for _, test := range tests {
		if err := test.mutate(); err != nil {
			t.Fatalf("%s returned error: %v", test.name, err)
		}
		if test.item.GroupID() != "" {
			t.Errorf("%s: item %s GroupID() = %q, expected empty", test.name, test.item.ID(), test.item.GroupID())
		}
	}

	kept := group.Items().At(0)
	group.Items().Clear()
	if kept.GroupID() != "" {
		t.Errorf("GroupID() = %q after Clear, expected empty", kept.GroupID())
	}
}

// sliceResource is a valid fyne.Resource whose value cannot be compared
type sliceResource struct {
	data []byte
}

func (r sliceResource) Name() string    { return "slice.png" }
func (r sliceResource) Content() []byte { return r.data }

func TestCommon_SetImageAcceptsIncomparableResources(t *testing.T) {
	item := NewItem("i", "", "", "a.png", "", "")

	var changed []string
	item.SetChangeCallback(func(property string) { changed = append(changed, property) })

	item.SetImage(sliceResource{data: []byte{1}})
	item.SetImage(sliceResource{data: []byte{2}})

	res, err := item.Image()
	if err != nil || res.Content()[0] != 2 {
		t.Errorf("Image() = %v, %v", res, err)
	}
	if len(changed) != 2 {
		t.Errorf("changed = %v, expected two Image notifications", changed)
	}
}
