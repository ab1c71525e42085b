package request

type SearchUsersQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ListUsersQuery struct {
	Q     *string `form:"q"`
	Skip  int     `form:"skip" binding:"omitempty,min=0"`
	Limit int     `form:"limit" binding:"omitempty,min=1,max=200"`
}
