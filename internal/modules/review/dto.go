package review

type CreateReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}
