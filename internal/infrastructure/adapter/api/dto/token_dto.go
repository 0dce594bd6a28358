package dto

// TokenBalanceResponse represents the token-side view of an account
type TokenBalanceResponse struct {
	Account   string `json:"account"`
	Balance   string `json:"balance"`
	Allowance string `json:"allowance"`
}

// ApproveRequest sets the escrow allowance of an account
type ApproveRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// MintRequest credits test tokens to an account
type MintRequest struct {
	Amount string `json:"amount" binding:"required"`
}
