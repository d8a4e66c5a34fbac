// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"repair_backend/internal/feature/auth/domain/entity"
	"repair_backend/internal/feature/auth/transport/http/dto"
	"repair_backend/internal/feature/auth/usecase"
	"repair_backend/internal/platform/session"
)

// dashboardPage はログイン成功後のリダイレクト先です。
const dashboardPage = "/dashboard.html"

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、セッションを発行します。
	Register(ctx context.Context, username, password string) (*entity.Session, error)
	// Login はユーザーを認証し、成功時にセッションを発行します。
	Login(ctx context.Context, username, password string) (*entity.Session, error)
	// Logout は指定されたセッションを冪等に破棄します。
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser はIDでユーザーを取得します。
	CurrentUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、フォーム/JSONリクエストを処理します。
type AuthHandler struct {
	auth  AuthUsecase
	codec *session.CookieCodec
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseとCookieCodecを注入します。
func NewAuthHandler(auth AuthUsecase, codec *session.CookieCodec) *AuthHandler {
	return &AuthHandler{auth: auth, codec: codec}
}

// Register はユーザー登録エンドポイントを処理します。
// - リクエスト（フォームまたはJSON）をRegisterReqにバインド
// - 必須フィールド欠落時は400を返却
// - ユーザー名重複時は200のプレーンテキスト "Username already exists." を返却（既存契約）
// - ストア障害時は500を返却
// - 成功時はセッションクッキーを設定し/dashboard.htmlへリダイレクト
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameAlreadyExists) {
			c.String(http.StatusOK, "Username already exists.")
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.String(http.StatusInternalServerError, "Error registering user.")
		return
	}

	if err := session.SetCookie(c, h.codec, sess); err != nil {
		slog.Error("failed to set session cookie", "error", err)
		c.String(http.StatusInternalServerError, "Error registering user.")
		return
	}

	slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, dashboardPage)
}

// Login はユーザーログインエンドポイントを処理します。
// - リクエスト（フォームまたはJSON）をLoginReqにバインド
// - 必須フィールド欠落時は400を返却
// - ユーザー未検出 / パスワード不一致は200のプレーンテキストで返却（既存契約）
// - 成功時はセッションクッキーを設定し/dashboard.htmlへリダイレクト
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.String(http.StatusOK, "User not found.")
		case errors.Is(err, usecase.ErrIncorrectPassword):
			c.String(http.StatusOK, "Incorrect password.")
		default:
			slog.Error("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.String(http.StatusInternalServerError, "Error logging in.")
		}
		return
	}

	if err := session.SetCookie(c, h.codec, sess); err != nil {
		slog.Error("failed to set session cookie", "error", err)
		c.String(http.StatusInternalServerError, "Error logging in.")
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, dashboardPage)
}

// Logout はセッションを破棄し、クッキーを失効させてランディングページへリダイレクトします。
// セッションが存在しなくても常に成功します。
func (h *AuthHandler) Logout(c *gin.Context) {
	if value, err := c.Cookie(session.CookieName); err == nil {
		if sid, decodeErr := h.codec.Decode(value); decodeErr == nil {
			if logoutErr := h.auth.Logout(c.Request.Context(), sid); logoutErr != nil {
				// 破棄失敗でもユーザーには影響させない（クッキーは失効させる）
				slog.Error("logout failed", "error", logoutErr)
			}
		}
	}

	session.ClearCookie(c)
	c.Redirect(http.StatusFound, session.LandingPage)
}

// Me は認証済みユーザー自身の情報を返します。
// パスワードハッシュはDTOに含まれないため、レスポンスに露出しません。
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(session.ContextUserID)

	u, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// セッションが参照するユーザーが存在しない場合は未認証として扱う
			c.Redirect(http.StatusFound, session.LandingPage)
			return
		}
		slog.Error("failed to fetch current user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResFromEntity(u))
}
