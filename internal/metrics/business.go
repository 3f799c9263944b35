package metrics

// IncrementPostCreated increments the post creation counter
func (m *Metrics) IncrementPostCreated() {
	m.safeExecute("IncrementPostCreated", func() {
		m.PostCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementSignup increments the signup counter
func (m *Metrics) IncrementSignup() {
	m.safeExecute("IncrementSignup", func() {
		m.SignupTotal.Inc()
	})
}

// SetBoardsTotal sets the active-boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetPostsTotal sets the active-posts gauge
func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

// SetUsersTotal sets the users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetBookmarksTotal sets the bookmarks gauge
func (m *Metrics) SetBookmarksTotal(count int64) {
	m.safeExecute("SetBookmarksTotal", func() {
		m.BookmarksTotal.Set(float64(count))
	})
}
