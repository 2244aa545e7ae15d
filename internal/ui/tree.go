package ui

import (
	"fmt"
	"strings"

	"github.com/moviegraph/moviegraph/internal/record"
	"github.com/moviegraph/moviegraph/internal/recordcore"
)

// TreeNode is an actor with the movies starring them. A nil Actor groups
// movies whose actor reference dangles.
type TreeNode struct {
	Actor  *record.Actor
	Movies []*record.Movie
}

// TreeNodeJSON is the JSON-serializable version of TreeNode.
type TreeNodeJSON struct {
	ID     *int            `json:"id"`
	Name   string          `json:"name"`
	Movies []*record.Movie `json:"movies"`
}

// ToJSON converts a TreeNode to its JSON-serializable form.
func (n *TreeNode) ToJSON() *TreeNodeJSON {
	if n.Actor == nil {
		return &TreeNodeJSON{Name: "", Movies: n.Movies}
	}
	id := n.Actor.ID
	return &TreeNodeJSON{ID: &id, Name: n.Actor.Name, Movies: n.Movies}
}

// BuildTree groups every movie under its actor, in actor insertion order.
// Movies with a dangling actor reference are collected in a trailing node
// with a nil Actor, which is omitted when there are none.
func BuildTree(core *recordcore.Core) []*TreeNode {
	actors := core.Actors()
	nodes := make([]*TreeNode, 0, len(actors)+1)
	for _, a := range actors {
		nodes = append(nodes, &TreeNode{Actor: a, Movies: core.MoviesOf(a)})
	}

	if dangling := core.Dangling(); len(dangling) > 0 {
		nodes = append(nodes, &TreeNode{Movies: dangling})
	}
	return nodes
}

// RenderTree renders the nodes as an indented actor/movie listing.
func RenderTree(nodes []*TreeNode) string {
	// Width of the widest "#id" plus padding
	width := 2
	for _, n := range nodes {
		if n.Actor != nil {
			width = max(width, len(fmt.Sprintf("#%d", n.Actor.ID)))
		}
		for _, m := range n.Movies {
			width = max(width, len(fmt.Sprintf("#%d", m.ID)))
		}
	}
	width += 2

	var sb strings.Builder
	for _, n := range nodes {
		if n.Actor == nil {
			sb.WriteString(strings.Repeat(" ", width))
			sb.WriteString(Danger.Render("Unknown actor"))
		} else {
			sb.WriteString(RenderID(n.Actor.ID, width))
			sb.WriteString(Title.Render(n.Actor.Name))
		}
		sb.WriteString(" ")
		sb.WriteString(RenderCount(len(n.Movies), "movie"))
		sb.WriteString("\n")

		for i, m := range n.Movies {
			branch := "├─ "
			if i == len(n.Movies)-1 {
				branch = "└─ "
			}
			sb.WriteString(strings.Repeat(" ", width))
			sb.WriteString(Muted.Render(branch))
			sb.WriteString(RenderID(m.ID, width))
			sb.WriteString(m.Name)
			if n.Actor == nil {
				sb.WriteString(" ")
				sb.WriteString(Muted.Render(fmt.Sprintf("(actor %d)", m.ActorID)))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
