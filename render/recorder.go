package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Submission struct {
	Name  string     `json:"name"`
	Model mgl32.Mat4 `json:"model"`
	// world position of the primitive origin
	Position mgl32.Vec3 `json:"position"`
}

// Recorder keeps the composed model matrix of every primitive drawn since Reset.
type Recorder struct {
	Submissions []Submission
}

func (r *Recorder) Submit(p *Primitive, projection, view, model mgl32.Mat4) {
	r.Submissions = append(r.Submissions, Submission{
		Name:     p.Name,
		Model:    model,
		Position: model.Col(3).Vec3(),
	})
}

func (r *Recorder) Reset() {
	r.Submissions = r.Submissions[:0]
}

// Find returns the first submission of the named primitive.
func (r *Recorder) Find(name string) (Submission, bool) {
	for _, s := range r.Submissions {
		if s.Name == name {
			return s, true
		}
	}
	return Submission{}, false
}
