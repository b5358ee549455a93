package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/okulikov/campushub/models"
)

type feedSection int

const (
	sectionEvents feedSection = iota
	sectionPosts
)

type homeModel struct {
	events  []models.Event
	posts   []models.Post
	section feedSection
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newHomeModel() homeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return homeModel{spinner: s, loading: true}
}

func (m homeModel) currentEvent() (models.Event, bool) {
	if m.section != sectionEvents || m.idx < 0 || m.idx >= len(m.events) {
		return models.Event{}, false
	}
	return m.events[m.idx], true
}

func (m homeModel) currentPost() (models.Post, bool) {
	if m.section != sectionPosts || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

func (m homeModel) sectionLen() int {
	if m.section == sectionEvents {
		return len(m.events)
	}
	return len(m.posts)
}

func (m homeModel) viewFor(userLine string) string {
	header := titleStyle.Render("CampusHub") + "  " + helpStyle.Render(userLine)
	if m.loading {
		return header + "\n\n" + m.spinner.View() + " Loading feed...\n"
	}

	out := header + "\n\n"

	out += sectionHeading("Events", m.section == sectionEvents) + "\n"
	if len(m.events) == 0 {
		out += "  no upcoming events\n"
	}
	for i, ev := range m.events {
		cursor := "  "
		if m.section == sectionEvents && i == m.idx {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%s  %s %s @ %s  (%d going, %d spots left)\n",
			cursor, ev.Title, ev.Date, ev.Time, ev.Location, ev.Attendees, ev.AvailableSpots)
	}

	out += "\n" + sectionHeading("Posts", m.section == sectionPosts) + "\n"
	if len(m.posts) == 0 {
		out += "  nothing posted yet\n"
	}
	for i, post := range m.posts {
		cursor := "  "
		if m.section == sectionPosts && i == m.idx {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%s — %s  (%d likes, %d comments)\n",
			cursor, post.Title, post.Author.Name, post.Likes, post.Comments)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter join/like  tab section  c copy location  r refresh  p profile  x sign out  q quit")
	return out
}

func sectionHeading(name string, active bool) string {
	if active {
		return titleStyle.Render(name)
	}
	return helpStyle.Render(name)
}
