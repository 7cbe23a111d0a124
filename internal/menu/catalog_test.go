package menu

import (
	"errors"
	"testing"
)

func ids(dishes []Dish) []string {
	out := make([]string, len(dishes))
	for i, d := range dishes {
		out[i] = d.ID
	}
	return out
}

func TestFilter_AllAndEmptySearchReturnsFullCatalogInOrder(t *testing.T) {
	dishes := DefaultDishes()

	got := Filter(dishes, AllCategories, "")

	if len(got) != len(dishes) {
		t.Fatalf("expected %d dishes, got %d", len(dishes), len(got))
	}
	for i := range dishes {
		if got[i].ID != dishes[i].ID {
			t.Fatalf("order changed at %d: expected %s, got %s", i, dishes[i].ID, got[i].ID)
		}
	}
}

func TestFilter_ByCategory(t *testing.T) {
	got := Filter(DefaultDishes(), "Gravies", "")

	want := []string{"vatha-kozhambu", "sambhar", "rasam", "mor-kozlambu"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("expected %s at %d, got %s", id, i, got[i].ID)
		}
	}
}

func TestFilter_IngredientsOnlyMatch(t *testing.T) {
	// "fenugreek" only appears in the ingredients of Dosa + Chutney.
	got := Filter(DefaultDishes(), AllCategories, "Fenugreek")

	if len(got) != 1 || got[0].ID != "dosa-chutney" {
		t.Fatalf("expected only dosa-chutney, got %v", ids(got))
	}
}

func TestFilter_DescriptionMatchIsCaseInsensitive(t *testing.T) {
	got := Filter(DefaultDishes(), AllCategories, "KARNATAKA")

	if len(got) != 1 || got[0].ID != "bisibelabath" {
		t.Fatalf("expected only bisibelabath, got %v", ids(got))
	}
}

func TestFilter_CategoryAndSearchCombine(t *testing.T) {
	got := Filter(DefaultDishes(), "Breakfast", "chutney")

	for _, d := range got {
		if d.Category != "Breakfast" {
			t.Errorf("unexpected category %s for %s", d.Category, d.ID)
		}
	}
	if len(got) == 0 {
		t.Fatal("expected breakfast dishes mentioning chutney")
	}
}

func TestFilter_BlankSearchIgnored(t *testing.T) {
	dishes := DefaultDishes()
	if got := Filter(dishes, AllCategories, "   "); len(got) != len(dishes) {
		t.Fatalf("expected blank search to return all dishes, got %d", len(got))
	}
}

func TestFilter_MissingDescriptionDoesNotMatch(t *testing.T) {
	dishes := []Dish{{ID: "plain", Name: "Plain", Ingredients: "rice", Category: "Others"}}
	if got := Filter(dishes, AllCategories, "spicy"); len(got) != 0 {
		t.Fatalf("expected no match, got %v", ids(got))
	}
}

func TestCatalog_NotLoadedIsDistinctFromEmpty(t *testing.T) {
	c := NewCatalog()

	if _, err := c.Filter(AllCategories, ""); !errors.Is(err, ErrCatalogNotLoaded) {
		t.Fatalf("expected ErrCatalogNotLoaded, got %v", err)
	}

	c.Replace(DefaultDishes())

	got, err := c.Filter(AllCategories, "no such dish anywhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	c := NewCatalog()
	c.Replace(DefaultDishes())

	d, ok := c.Lookup("rasam")
	if !ok {
		t.Fatal("expected rasam in catalog")
	}
	d.Name = "changed"

	again, _ := c.Lookup("rasam")
	if again.Name != "Rasam" {
		t.Fatalf("catalog mutated through lookup copy: %s", again.Name)
	}

	if _, ok := c.Lookup("missing"); ok {
		t.Fatal("expected missing dish lookup to fail")
	}
}
