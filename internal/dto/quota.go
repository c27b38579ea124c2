package dto

// QuotaStatusDto 組織目前的寫入配額；Enabled=false 時不限制
type QuotaStatusDto struct {
	OrgID        string `json:"orgId"`
	Enabled      bool   `json:"enabled"`
	Period       string `json:"period,omitempty"`
	Limit        int    `json:"limit"`
	Remaining    int    `json:"remaining"`
	ResetSeconds int64  `json:"resetSeconds"`
}
