package models

import "gorm.io/gorm"

type Candidate struct {
	gorm.Model
	Name         string `json:"name"`
	PartyName    string `json:"partyName"`
	PartyLogo    string `json:"partyLogo"`
	Constituency string `json:"constituency"`
	Votes        uint   `json:"votes"` // Count of votes received
}

// CandidateUpdate holds the admin-editable candidate fields for partial
// updates. The tally is excluded; Votes moves only through CastVote.
type CandidateUpdate struct {
	Name         *string `json:"name"`
	PartyName    *string `json:"partyName"`
	PartyLogo    *string `json:"partyLogo"`
	Constituency *string `json:"constituency"`
}

func (u CandidateUpdate) Apply(c *Candidate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.PartyName != nil {
		c.PartyName = *u.PartyName
	}
	if u.PartyLogo != nil {
		c.PartyLogo = *u.PartyLogo
	}
	if u.Constituency != nil {
		c.Constituency = *u.Constituency
	}
}
