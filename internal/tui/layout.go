package tui

// Chrome sizes around the screen content
const (
	HeaderHeight = 1
	FooterHeight = 1

	// ContentStyle padding
	ContentPadX = 2
	ContentPadY = 1

	MinContentWidth = 20

	// Lines above the exercise list: filter bar + blank line
	ExerciseListChrome = 2
	// Lines above the blog list: search line + blank line
	BlogListChrome = 2
	// Lines of the blog reader taken by its scroll hint
	ReaderChrome = 1
)

// contentSize returns the usable width and height inside the padded content area
func (m Model) contentSize() (width, height int) {
	width = max(m.Width-2*ContentPadX, MinContentWidth)
	height = max(m.Height-HeaderHeight-FooterHeight-2*ContentPadY, 3)
	return width, height
}

// updateLayout sizes every component after a resize
func (m *Model) updateLayout() {
	width, height := m.contentSize()

	m.exercises.SetSize(width, height-ExerciseListChrome)
	m.posts.SetSize(width, height-BlogListChrome)

	m.reader.Width = width
	m.reader.Height = max(height-ReaderChrome, 1)
	if m.Screen == ScreenBlogReader {
		m.reader.SetContent(m.renderPost(width))
	}

	m.progress.Width = min(width, 60)
	m.blogSearch.Width = max(width-4, 10)
	m.faqSearch.Width = max(width-4, 10)
	m.message.SetWidth(min(width, 80))
}
