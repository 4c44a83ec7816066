package tui

import "github.com/aalvaropc/postline/internal/domain"

type postsLoadedMsg struct {
	res domain.Result[[]domain.Post]
}

type commentsLoadedMsg struct {
	postID string
	res    domain.Result[[]domain.Comment]
}
