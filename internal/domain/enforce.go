package domain

// EnforceRequest asks whether UserID may perform Action on Resource inside CompanyID.
type EnforceRequest struct {
	UserID    string
	CompanyID string
	Resource  string
	Action    string
}

// EnforceRequestFor builds the request that checks a single permission.
func EnforceRequestFor(userID, companyID string, p Permission) EnforceRequest {
	return EnforceRequest{
		UserID:    userID,
		CompanyID: companyID,
		Resource:  p.Resource(),
		Action:    p.Action(),
	}
}
