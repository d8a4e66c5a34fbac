package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// フォーム送信とJSONの両方を受け付け、必須フィールドのバリデーションを含みます。
type LoginReq struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
