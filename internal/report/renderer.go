package report

import (
	"fmt"
	"io"

	"github.com/school-data/deptreport/internal/school"
)

const (
	nameIndent   = "    "
	detailIndent = "        "
	courseIndent = "            "
)

// Renderer writes a human-readable department report. The layout is:
//
//	<School>: <Department>
//	    <name>
//	        Email: <email>
//	        Office: <building> <room>
//	        Teaches:
//	            <course>
//	            ...
//
// Below the two required top-level elements every lookup is best
// effort: a missing or mistyped field drops its line and rendering
// moves on.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render walks the document tree and writes the report. The only
// possible errors are the two required elements, School and Department.
func (r *Renderer) Render(doc any) error {
	schoolName, ok := school.StringField(doc, "School")
	if !ok {
		return &ElementError{Name: "School"}
	}

	department, ok := school.StringField(doc, "Department")
	if !ok {
		return &ElementError{Name: "Department"}
	}

	fmt.Fprintf(r.out, "%s: %s\n", schoolName, department)

	// A missing Faculty list is not an error, the report just ends
	// after the header line.
	faculty, ok := school.ArrayField(doc, "Faculty")
	if !ok {
		return nil
	}

	for _, member := range faculty {
		r.renderProfessor(member)
	}

	return nil
}

// renderProfessor prints one faculty member. A record without a name is
// skipped entirely; the rest of its fields would have nothing to hang
// off.
func (r *Renderer) renderProfessor(person any) {
	name, ok := school.StringField(person, "name")
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "%s%s\n", nameIndent, name)

	if email, ok := school.StringField(person, "email"); ok {
		fmt.Fprintf(r.out, "%sEmail: %s\n", detailIndent, email)
	}

	if office, ok := school.ObjectField(person, "office"); ok {
		building, hasBuilding := school.StringField(office, "building")
		room, hasRoom := school.StringField(office, "room")

		// Partial office info is dropped, not printed partially.
		if hasBuilding && hasRoom {
			fmt.Fprintf(r.out, "%sOffice: %s %s\n", detailIndent, building, room)
		}
	}

	fmt.Fprintf(r.out, "%sTeaches:\n", detailIndent)

	courses, ok := school.ArrayField(person, "courses_taught")
	if !ok {
		return
	}

	for _, course := range courses {
		if course == nil {
			// Best effort: a null entry ends this professor's course
			// list. Everything printed so far stands.
			return
		}

		if title, ok := course.(string); ok {
			fmt.Fprintf(r.out, "%s%s\n", courseIndent, title)
		}
	}
}
