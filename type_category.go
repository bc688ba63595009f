package networth

import "fmt"

// AssetCategory classifies what an asset is.
type AssetCategory string

const (
	Cash        AssetCategory = "cash"
	Investments AssetCategory = "investments"
	Property    AssetCategory = "property"
	OtherAsset  AssetCategory = "other"
)

// AssetCategories lists every asset category in display order.
var AssetCategories = []AssetCategory{Cash, Investments, Property, OtherAsset}

// Valid reports whether c is one of the known asset categories.
func (c AssetCategory) Valid() bool {
	switch c {
	case Cash, Investments, Property, OtherAsset:
		return true
	}
	return false
}

// Label returns the display name of the category. Unknown categories are shown as Other.
func (c AssetCategory) Label() string {
	switch c {
	case Cash:
		return "Cash"
	case Investments:
		return "Investments"
	case Property:
		return "Property"
	default:
		return "Other"
	}
}

// ParseAssetCategory parses a string into an AssetCategory.
func ParseAssetCategory(s string) (AssetCategory, error) {
	c := AssetCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown asset category %q, want one of %v", s, AssetCategories)
	}
	return c, nil
}

// LiabilityCategory classifies what a liability is.
type LiabilityCategory string

const (
	Mortgage       LiabilityCategory = "mortgage"
	StudentLoans   LiabilityCategory = "student-loans"
	CreditCards    LiabilityCategory = "credit-cards"
	Auto           LiabilityCategory = "auto"
	OtherLiability LiabilityCategory = "other"
)

// LiabilityCategories lists every liability category in display order.
var LiabilityCategories = []LiabilityCategory{Mortgage, StudentLoans, CreditCards, Auto, OtherLiability}

// Valid reports whether c is one of the known liability categories.
func (c LiabilityCategory) Valid() bool {
	switch c {
	case Mortgage, StudentLoans, CreditCards, Auto, OtherLiability:
		return true
	}
	return false
}

// Label returns the display name of the category. Unknown categories are shown as Other.
func (c LiabilityCategory) Label() string {
	switch c {
	case Mortgage:
		return "Mortgage"
	case StudentLoans:
		return "Student Loans"
	case CreditCards:
		return "Credit Cards"
	case Auto:
		return "Auto"
	default:
		return "Other"
	}
}

// ParseLiabilityCategory parses a string into a LiabilityCategory.
func ParseLiabilityCategory(s string) (LiabilityCategory, error) {
	c := LiabilityCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown liability category %q, want one of %v", s, LiabilityCategories)
	}
	return c, nil
}
