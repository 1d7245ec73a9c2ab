package domain

// LeadType identifies which storefront form produced a lead.
type LeadType string

const (
	LeadTypeBuy       LeadType = "buy"
	LeadTypeOffer     LeadType = "offer"
	LeadTypeGeneral   LeadType = "general"
	LeadTypeSellOffer LeadType = "sell_offer"
)

func (t LeadType) String() string { return string(t) }

func (t LeadType) IsValid() bool {
	switch t {
	case LeadTypeBuy, LeadTypeOffer, LeadTypeGeneral, LeadTypeSellOffer:
		return true
	}
	return false
}

// LeadStatus tracks how far a lead has been processed by the sales team.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	}
	return false
}

// BlockKind is the kind of a parsed blog content block.
type BlockKind string

const (
	BlockHeading2  BlockKind = "heading2"
	BlockHeading3  BlockKind = "heading3"
	BlockList      BlockKind = "list"
	BlockParagraph BlockKind = "paragraph"
)
