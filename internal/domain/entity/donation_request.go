package entity

import (
	"slices"
	"strings"
	"time"
)

// BloodGroups lists the accepted ABO/Rh groups.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsValidBloodGroup reports whether g is one of BloodGroups.
func IsValidBloodGroup(g string) bool {
	return slices.Contains(BloodGroups, g)
}

// DonationStatus is the lifecycle state of a donation request.
// Any status may follow any other; callers drive the transitions.
type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "pending"
	DonationStatusInProgress DonationStatus = "inprogress"
	DonationStatusDone       DonationStatus = "done"
	DonationStatusCanceled   DonationStatus = "canceled"
)

// ParseDonationStatus normalises s and reports whether it names a known status.
// "in progress" and "in-progress" are accepted as aliases of inprogress.
func ParseDonationStatus(s string) (DonationStatus, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(normalized)
	if normalized == "cancelled" {
		normalized = string(DonationStatusCanceled)
	}

	switch status := DonationStatus(normalized); status {
	case DonationStatusPending, DonationStatusInProgress, DonationStatusDone, DonationStatusCanceled:
		return status, true
	default:
		return "", false
	}
}

// DonationRequest is a solicitation for blood on behalf of a recipient.
type DonationRequest struct {
	ID                string         `json:"_id"`
	RequesterName     string         `json:"requesterName"`
	RequesterEmail    string         `json:"requesterEmail"`
	RecipientName     string         `json:"recipientName"`
	RecipientDistrict string         `json:"recipientDistrict"`
	RecipientUpazila  string         `json:"recipientUpazila"`
	RecipientDivision string         `json:"recipientDivision,omitempty"`
	HospitalName      string         `json:"hospitalName"`
	FullAddress       string         `json:"fullAddress"`
	BloodGroup        string         `json:"bloodGroup"`
	DonationDate      string         `json:"donationDate"`
	DonationTime      string         `json:"donationTime"`
	RequestMessage    string         `json:"requestMessage,omitempty"`
	Status            DonationStatus `json:"status"`
	DonorID           string         `json:"donorId,omitempty"`
	DonorName         string         `json:"donorName,omitempty"`
	DonorEmail        string         `json:"donorEmail,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// DonorRef identifies the donor who took on a request.
type DonorRef struct {
	ID    string
	Name  string
	Email string
}

// IsOwnedBy reports whether email is the requester of the donation request.
func (r *DonationRequest) IsOwnedBy(email string) bool {
	return strings.EqualFold(r.RequesterEmail, email)
}

// IsAssignedTo reports whether email is the assigned donor.
func (r *DonationRequest) IsAssignedTo(email string) bool {
	return r.DonorEmail != "" && strings.EqualFold(r.DonorEmail, email)
}
