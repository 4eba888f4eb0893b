package usecase

import (
	"testing"

	"github.com/tanneryrow/backend/internal/domain"
)

func TestMatchSampleBook(t *testing.T) {
	m := NewCategoryMatchers()
	parser := NewDescriptorParser(false)
	catalog := smallCatalog(
		"Sample Book - Horween Dublin",
		"Sample Book - All Walpier",
		"Sample Book - T & B Dip Dye",
		"Sample Book - Kid, Lamb, Goat",
	)

	t.Run("brand plus tannage", func(t *testing.T) {
		desc := parser.Parse("Horween Dublin Swatch Book", "")
		result, handled := m.Match(desc, catalog, "Horween Dublin Swatch Book", "")
		if !handled {
			t.Fatal("sample book should be handled")
		}
		if result.Item != "Sample Book - Horween Dublin" {
			t.Errorf("Item = %q", result.Item)
		}
		if result.Tier != domain.TierCategory {
			t.Errorf("Tier = %q, want category", result.Tier)
		}
	})

	t.Run("all-brand book", func(t *testing.T) {
		desc := parser.Parse("Conceria Walpier Sample Book", "")
		result, _ := m.Match(desc, catalog, "Conceria Walpier Sample Book", "")
		if result.Item != "Sample Book - All Walpier" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("tusting variant names the book", func(t *testing.T) {
		desc := parser.Parse("Tusting & Burnett Swatch Book", "Dip Dye")
		result, _ := m.Match(desc, catalog, "Tusting & Burnett Swatch Book", "Dip Dye")
		if result.Item != "Sample Book - T & B Dip Dye" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("unknown book routes to sentinel with new-item flag", func(t *testing.T) {
		desc := parser.Parse("Mystery Tannery Swatch Book", "")
		result, handled := m.Match(desc, catalog, "Mystery Tannery Swatch Book", "")
		if !handled {
			t.Fatal("sample book should be handled even on a miss")
		}
		if result.Item != domain.SentinelItem || !result.NeedsNewItem {
			t.Errorf("result = %+v, want sentinel with NeedsNewItem", result)
		}
	})
}

func TestMatchAccessory(t *testing.T) {
	m := NewCategoryMatchers()
	catalog := smallCatalog(
		"Tokonole Burnishing Gum Clear 120g",
		"Tokonole Burnishing Gum Black 500g",
		"Ecostick 1816B Adhesive",
		"Commission",
		"TR Leather Conditioner 8oz",
	)
	desc := domain.Descriptor{ProductType: domain.ProductAccessory}

	t.Run("tokonole by color and size", func(t *testing.T) {
		result, handled := m.Match(desc, catalog, "Tokonole Burnishing Gum", "Black - 500g")
		if !handled {
			t.Fatal("accessory should be handled")
		}
		if result.Item != "Tokonole Burnishing Gum Black 500g" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("tokonole defaults to clear 120g", func(t *testing.T) {
		result, _ := m.Match(desc, catalog, "Tokonole Burnishing Gum", "")
		if result.Item != "Tokonole Burnishing Gum Clear 120g" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("ecostick default article", func(t *testing.T) {
		result, _ := m.Match(desc, catalog, "Ecostick Leather Adhesive", "")
		if result.Item != "Ecostick 1816B Adhesive" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("belts bill against the commission item", func(t *testing.T) {
		result, _ := m.Match(desc, catalog, "Custom Shell Cordovan Belt", "")
		if result.Item != "Commission" {
			t.Errorf("Item = %q, want Commission", result.Item)
		}
	})

	t.Run("house conditioner", func(t *testing.T) {
		result, _ := m.Match(desc, catalog, "TR Leather Conditioner", "")
		if result.Item != "TR Leather Conditioner 8oz" {
			t.Errorf("Item = %q", result.Item)
		}
	})
}

func TestMatchSportsLeather(t *testing.T) {
	m := NewCategoryMatchers()
	catalog := smallCatalog(
		"Horween 2003C Basketball Leather",
		"Horween 8064 Football Leather Tan",
	)

	t.Run("article code wins", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductFootball}
		result, _ := m.Match(desc, catalog, "Horween Football Leather 8064", "")
		if result.Item != "Horween 8064 Football Leather Tan" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("basketball falls back to the stocked default", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductBasketball}
		result, _ := m.Match(desc, catalog, "Basketball Leather Remnant", "")
		if result.Item != basketballDefault {
			t.Errorf("Item = %q, want default", result.Item)
		}
	})
}

func TestMatchFixedCategories(t *testing.T) {
	m := NewCategoryMatchers()
	catalog := smallCatalog("Scrap Leather")

	t.Run("scrap", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductScrap}
		result, handled := m.Match(desc, catalog, "Scrap Leather Box", "")
		if !handled || result.Item != "Scrap Leather" {
			t.Errorf("result = %+v", result)
		}
	})

	t.Run("gift card", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductFullHide}
		result, handled := m.Match(desc, catalog, "Tannery Row Gift Card", "")
		if !handled || result.Item != "Gift card" {
			t.Errorf("result = %+v", result)
		}
	})

	t.Run("gift card redemption is not a gift card sale", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductFullHide}
		_, handled := m.Match(desc, catalog, "Gift Card Redemption", "")
		if handled {
			t.Error("redemption should fall through to the general resolver")
		}
	})
}

func TestMatchMysteryBundles(t *testing.T) {
	m := NewCategoryMatchers()
	desc := domain.Descriptor{ProductType: domain.ProductMysteryBundle}

	t.Run("current bundle needs its own catalog item", func(t *testing.T) {
		result, handled := m.Match(desc, nil, "Mystery Leather Panel Pack", "")
		if !handled {
			t.Fatal("mystery bundle should be handled")
		}
		if result.Tier != domain.TierSentinel || !result.NeedsNewItem {
			t.Errorf("result = %+v, want sentinel needing new item", result)
		}
	})

	t.Run("past-season bundles are deprecated, not unmatched", func(t *testing.T) {
		result, handled := m.Match(desc, nil, "Holiday Mystery Bundle 2023", "")
		if !handled {
			t.Fatal("mystery bundle should be handled")
		}
		if result.Tier != domain.TierDeprecated {
			t.Errorf("Tier = %q, want deprecated", result.Tier)
		}
		if !result.Deprecated() {
			t.Error("Deprecated() = false")
		}
	})
}

func TestMatchStrips(t *testing.T) {
	m := NewCategoryMatchers()
	catalog := smallCatalog(
		"Russet Horsehide Strips HR 8-9 oz",
		"Russet Horsehide Strips HR 9 oz and up",
		"Russet Horsehide Strips SR 8-9 oz",
		"Handstained Strips Brown",
	)

	t.Run("roll type and open weight", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductStrips, Tannage: "Russet Horsehide", Weight: "9+"}
		result, handled := m.Match(desc, catalog, "Russet Horsehide Strips", "Hard Rolled - 9+ oz")
		if !handled {
			t.Fatal("strips should be handled on a hit")
		}
		if result.Item != "Russet Horsehide Strips HR 9 oz and up" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("soft rolled variant", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductStrips, Tannage: "Russet Horsehide", Weight: "8-9"}
		result, _ := m.Match(desc, catalog, "Russet Horsehide Strips", "Soft Rolled - 8-9 oz")
		if result.Item != "Russet Horsehide Strips SR 8-9 oz" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("handstained strips by color", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductStrips, Tannage: "Handstained", Color: "Brown"}
		result, _ := m.Match(desc, catalog, "Handstained Leather Strips", "Brown")
		if result.Item != "Handstained Strips Brown" {
			t.Errorf("Item = %q", result.Item)
		}
	})

	t.Run("miss falls through to the general resolver", func(t *testing.T) {
		desc := domain.Descriptor{ProductType: domain.ProductStrips, Tannage: "Dublin", Color: "Black"}
		_, handled := m.Match(desc, catalog, "Dublin Strips", "Black")
		if handled {
			t.Error("unmatched strips must fall through")
		}
	})
}
