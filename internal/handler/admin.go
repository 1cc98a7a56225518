package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

type adminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminTokenResponse struct {
	Admin string `json:"admin"`
	Token string `json:"token"`
}

// adminToken issues a one-off session token after checking the
// configured credentials in constant time.
func (h *Handler) adminToken(ctx *fasthttp.RequestCtx) {
	if h.cfg.AdminUsername == "" || h.cfg.AdminPassword == "" {
		writeError(ctx, fasthttp.StatusUnauthorized, "Admin access is not configured")
		return
	}

	var creds adminCredentials
	if err := json.Unmarshal(ctx.PostBody(), &creds); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(h.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(h.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		writeError(ctx, fasthttp.StatusUnauthorized, "Invalid credentials")
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Token generation failed")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, adminTokenResponse{
		Admin: creds.Username,
		Token: hex.EncodeToString(buf),
	})
}
