// README: Member account handler (join, login, token refresh, withdrawal).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daytrip/internal/http/middleware"
	"daytrip/internal/modules/member"
)

type MemberHandler struct {
	members *member.Service
}

func NewMemberHandler(memberSvc *member.Service) *MemberHandler {
	return &MemberHandler{members: memberSvc}
}

type joinReq struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type loginReq struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type refreshReq struct {
	MemberID     int64  `json:"memberId"`
	RefreshToken string `json:"refreshToken"`
}

type memberResp struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
}

// Join handles POST /api/members/join.
func (h *MemberHandler) Join(c *gin.Context) {
	var req joinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.UserID == "" || req.Nickname == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "missing userId, nickname or password")
		return
	}

	m, err := h.members.Join(c.Request.Context(), member.JoinCommand{
		UserID:   req.UserID,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		writeMemberError(c, err)
		return
	}

	writeJSON(c, http.StatusCreated, memberResp{ID: m.ID, UserID: m.UserID, Nickname: m.Nickname})
}

// Login handles POST /api/members/login.
func (h *MemberHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "missing userId or password")
		return
	}

	m, tokens, err := h.members.Login(c.Request.Context(), member.LoginCommand{
		UserID:   req.UserID,
		Password: req.Password,
	})
	if err != nil {
		writeMemberError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"member": memberResp{ID: m.ID, UserID: m.UserID, Nickname: m.Nickname},
		"tokens": tokens,
	})
}

// Refresh handles POST /api/members/refresh.
func (h *MemberHandler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.MemberID <= 0 || req.RefreshToken == "" {
		writeError(c, http.StatusBadRequest, "missing memberId or refreshToken")
		return
	}

	tokens, err := h.members.Refresh(c.Request.Context(), req.MemberID, req.RefreshToken)
	if err != nil {
		writeMemberError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, tokens)
}

// Logout handles POST /api/members/logout. Requires a valid access token.
func (h *MemberHandler) Logout(c *gin.Context) {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.members.Logout(c.Request.Context(), memberID); err != nil {
		writeMemberError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/members/me. Requires a valid access token.
func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.members.DeleteAccount(c.Request.Context(), memberID); err != nil {
		writeMemberError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
