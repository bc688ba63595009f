package networth

// Preset is a ready made name and category offered when entering an item.
type Preset[C AssetCategory | LiabilityCategory] struct {
	Name     string
	Category C
}

// AssetPresets are the common assets offered to the user.
var AssetPresets = []Preset[AssetCategory]{
	{"Checking Account", Cash},
	{"Savings Account", Cash},
	{"401(k)", Investments},
	{"Roth IRA", Investments},
	{"Brokerage Account", Investments},
	{"Primary Home", Property},
	{"Vehicle", OtherAsset},
	{"Crypto", Investments},
}

// LiabilityPresets are the common liabilities offered to the user.
var LiabilityPresets = []Preset[LiabilityCategory]{
	{"Mortgage", Mortgage},
	{"Student Loans", StudentLoans},
	{"Credit Card", CreditCards},
	{"Auto Loan", Auto},
	{"Personal Loan", OtherLiability},
	{"Medical Debt", OtherLiability},
}

// FindPreset returns the preset with the given name.
func FindPreset[C AssetCategory | LiabilityCategory](presets []Preset[C], name string) (Preset[C], bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset[C]{}, false
}
