package models

import "time"

// DocKind tags the catalog document union. Every product row carries
// exactly one kind and the matching params struct below.
type DocKind string

const (
	DocFloor             DocKind = "floor"
	DocStair             DocKind = "stair"
	DocSkirting          DocKind = "skirting"
	DocTransitionProfile DocKind = "transitionProfile"
	DocWallTermination   DocKind = "wallTermination"
	DocAccessory         DocKind = "accessory"
)

// Price pairs the net and gross amount of one priced unit.
// Amounts are whole CZK.
type Price struct {
	Net      int64  `json:"net"`
	Gross    int64  `json:"gross"`
	Currency string `json:"currency"`
}

// Product is the model for the 'products' table (the content store).
// Type-specific technical parameters live in a JSON 'params' column and
// are decoded into exactly one of the *Params pointers by the catalog
// store, keyed by Kind.
type Product struct {
	ID           int64   `json:"id" db:"id"`
	Kind         DocKind `json:"kind" db:"kind"`
	Slug         string  `json:"slug" db:"slug"`
	Title        string  `json:"title" db:"title"`
	CategorySlug string  `json:"categorySlug" db:"category_slug"`

	// Net price of one unit (per m2 for floors, per piece otherwise).
	UnitPriceNet int64  `json:"unitPriceNet" db:"unit_price_net"`
	Currency     string `json:"currency" db:"currency"`

	Image string `json:"image" db:"image"`
	Link  string `json:"link" db:"link"`

	// Decor/pattern reference shared across product kinds, used for
	// cross-sell. NULL for products without a decor.
	DecorSlug *string `json:"decorSlug,omitempty" db:"decor_slug"`

	// Classification tags driving promotional badges ("novinka", "akce", ...).
	Tags []string `json:"tags,omitempty"`

	// Exactly one of these is non-nil, matching Kind.
	Floor             *FloorParams             `json:"floor,omitempty"`
	Stair             *StairParams             `json:"stair,omitempty"`
	Skirting          *SkirtingParams          `json:"skirting,omitempty"`
	TransitionProfile *TransitionProfileParams `json:"transitionProfile,omitempty"`
	WallTermination   *WallTerminationParams   `json:"wallTermination,omitempty"`
	Accessory         *AccessoryParams         `json:"accessory,omitempty"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FloorParams holds the technical parameters of a vinyl floor document.
type FloorParams struct {
	ThicknessMM    float64 `json:"thicknessMm"`
	WearLayerMM    float64 `json:"wearLayerMm"`
	PlankLengthMM  int     `json:"plankLengthMm"`
	PlankWidthMM   int     `json:"plankWidthMm"`
	PackCoverageM2 float64 `json:"packCoverageM2"`
}

// StairParams holds the technical parameters of a stair-covering document.
type StairParams struct {
	LengthMM     int `json:"lengthMm"`
	DepthMM      int `json:"depthMm"`
	NoseHeightMM int `json:"noseHeightMm"`
}

// SkirtingParams holds the technical parameters of a skirting-board document.
type SkirtingParams struct {
	HeightMM int `json:"heightMm"`
	LengthMM int `json:"lengthMm"`
}

// TransitionProfileParams holds the technical parameters of a transition
// profile document.
type TransitionProfileParams struct {
	LengthMM int    `json:"lengthMm"`
	Finish   string `json:"finish"`
}

// WallTerminationParams holds the technical parameters of a wall-termination
// profile document.
type WallTerminationParams struct {
	LengthMM int `json:"lengthMm"`
}

// AccessoryParams holds the technical parameters of an accessory document
// (glue, cleaning kit, underlay, ...).
type AccessoryParams struct {
	Usage  string `json:"usage"`
	Volume string `json:"volume,omitempty"`
}

// DecorPattern is the model for the 'decors' table: a shared visual finish
// linking otherwise distinct product kinds for cross-sell.
type DecorPattern struct {
	ID    int64  `json:"id" db:"id"`
	Slug  string `json:"slug" db:"slug"`
	Title string `json:"title" db:"title"`
}

// CrossSellSection groups cross-sell products of one kind under the
// label the storefront renders as a section heading.
type CrossSellSection struct {
	Label    string    `json:"label"`
	Kind     DocKind   `json:"kind"`
	Products []Product `json:"products"`
}
