// Description: Defines the Voter model and its fields.
package models

import "gorm.io/gorm"

type Voter struct {
	gorm.Model           // Adds fields ID, CreatedAt, UpdatedAt, DeletedAt
	VoterID       string `json:"voterId" gorm:"uniqueIndex;not null"`
	AadhaarNumber string `json:"aadhaarNumber" gorm:"uniqueIndex;not null"`
	Name          string `json:"name"`
	Password      string `json:"-"`
	DOB           string `json:"dob"`
	Age           int    `json:"age"`
	Email         string `json:"email"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	State         string `json:"state"`
	District      string `json:"district"`
	Pincode       string `json:"pincode"`
	MaritalStatus string `json:"maritalStatus"`
	ProfileImage  string `json:"profileImage"`
	HasVoted      bool   `json:"hasVoted"`
	VotedFor      *uint  `json:"votedFor"`
}

// VoterUpdate holds the admin-editable voter fields for partial updates.
// Nil fields are left untouched.
type VoterUpdate struct {
	VoterID       *string `json:"voterId"`
	AadhaarNumber *string `json:"aadhaarNumber"`
	Name          *string `json:"name"`
	Password      *string `json:"password"`
	DOB           *string `json:"dob"`
	Age           *int    `json:"age"`
	Email         *string `json:"email"`
	Gender        *string `json:"gender"`
	Address       *string `json:"address"`
	State         *string `json:"state"`
	District      *string `json:"district"`
	Pincode       *string `json:"pincode"`
	MaritalStatus *string `json:"maritalStatus"`
	ProfileImage  *string `json:"profileImage"`
}

// Apply copies the non-nil fields onto the voter. Voting state is never
// touched here; HasVoted and VotedFor mutate only through CastVote.
func (u VoterUpdate) Apply(v *Voter) {
	if u.VoterID != nil {
		v.VoterID = *u.VoterID
	}
	if u.AadhaarNumber != nil {
		v.AadhaarNumber = *u.AadhaarNumber
	}
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.Password != nil {
		v.Password = *u.Password
	}
	if u.DOB != nil {
		v.DOB = *u.DOB
	}
	if u.Age != nil {
		v.Age = *u.Age
	}
	if u.Email != nil {
		v.Email = *u.Email
	}
	if u.Gender != nil {
		v.Gender = *u.Gender
	}
	if u.Address != nil {
		v.Address = *u.Address
	}
	if u.State != nil {
		v.State = *u.State
	}
	if u.District != nil {
		v.District = *u.District
	}
	if u.Pincode != nil {
		v.Pincode = *u.Pincode
	}
	if u.MaritalStatus != nil {
		v.MaritalStatus = *u.MaritalStatus
	}
	if u.ProfileImage != nil {
		v.ProfileImage = *u.ProfileImage
	}
}
