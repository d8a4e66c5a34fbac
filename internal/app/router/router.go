package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appointmenthandler "repair_backend/internal/feature/appointments/transport/handler"
	authhandler "repair_backend/internal/feature/auth/transport/handler"
	authusecase "repair_backend/internal/feature/auth/usecase"
	"repair_backend/internal/platform/http/handler"
	"repair_backend/internal/platform/session"
)

func NewRouter(auth *authhandler.AuthHandler, appointments *appointmenthandler.AppointmentHandler,
	sessions authusecase.SessionRepository, codec *session.CookieCodec) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録（セッション発行）
	r.POST("/register", auth.Register)
	// ログイン（セッション発行）
	r.POST("/login", auth.Login)
	// ログアウトは常に成功するため認証グループの外に置く
	r.GET("/logout", auth.Logout)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	protected := r.Group("/")
	// session.LoginRequired() ミドルウェアを適用
	// → 有効なセッションクッキーが必要になる
	protected.Use(session.LoginRequired(sessions, codec))
	{
		protected.GET("/api/me", auth.Me)
		protected.POST("/appointments", appointments.Book)
		protected.GET("/appointments", appointments.List)
	}

	// 静的ページ（index.html, dashboard.html, appointments.html）
	// ルートと衝突しないようNoRouteフォールバックで配信する
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir("./public"))))

	return r
}
