package feed

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

// Vec is a JSON [x, y, z] triple
type Vec [3]float64

func (v Vec) vec3F() vmath.Vec3F { return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]} }

// ParamsMessage carries drag-model inputs; omitted fields take the defaults
type ParamsMessage struct {
	Mass            *float64 `json:"mass,omitempty"`
	Radius          *float64 `json:"radius,omitempty"`
	DragCoefficient *float64 `json:"cd,omitempty"`
	AirDensity      *float64 `json:"rho,omitempty"`
	Wind            Vec      `json:"wind"`
}

// Request asks for one predicted trajectory
type Request struct {
	Start    Vec            `json:"start"`
	Velocity Vec            `json:"velocity"`
	Params   *ParamsMessage `json:"params,omitempty"`
	Gravity  *Vec           `json:"gravity,omitempty"`
	Steps    int            `json:"steps,omitempty"`
	TimeStep float64        `json:"dt,omitempty"`
	Mode     string         `json:"mode,omitempty"`
}

// Response carries the sampled points, or Error when the request was rejected
type Response struct {
	ID     string `json:"id"`
	Mode   string `json:"mode,omitempty"`
	Points []Vec  `json:"points,omitempty"`
	Error  string `json:"error,omitempty"`
}

// params resolves the request's drag inputs over the defaults, clamping as the physics setters do
func (r *Request) params() physics.Params {
	def := physics.NewParams()
	if r.Params == nil {
		return def
	}
	pick := func(v *float64, fallback float64) float64 {
		if v == nil {
			return fallback
		}
		return *v
	}
	m := r.Params
	return physics.NewParamsFrom(
		pick(m.Mass, def.Mass()),
		pick(m.Radius, def.Radius()),
		pick(m.DragCoefficient, def.DragCoefficient()),
		pick(m.AirDensity, def.AirDensity()),
		m.Wind.vec3F(),
	)
}

// predictor resolves sampling settings; steps above maxSteps are rejected
func (r *Request) predictor(maxSteps int) (physics.Predictor, error) {
	pr := physics.DefaultPredictor()

	mode, ok := physics.ParseMode(r.Mode)
	if !ok {
		return pr, fmt.Errorf("unknown mode %q", r.Mode)
	}
	pr.Mode = mode

	if r.Steps > maxSteps {
		return pr, fmt.Errorf("steps %d exceeds limit %d", r.Steps, maxSteps)
	}
	if r.Steps != 0 {
		pr.Steps = max(r.Steps, parameter.MinStepCount)
	}
	if r.TimeStep != 0 {
		pr.TimeStep = r.TimeStep
	}
	if r.Gravity != nil {
		pr.Gravity = r.Gravity.vec3F()
	}
	return pr, nil
}

// Handle answers one request; it is pure apart from the generated id
func Handle(req *Request, maxSteps int) Response {
	resp := Response{ID: uuid.NewString()}

	pr, err := req.predictor(maxSteps)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	traj := pr.Predict(req.Start.vec3F(), req.Velocity.vec3F(), req.params())
	resp.Mode = pr.Mode.String()
	resp.Points = make([]Vec, len(traj))
	for i, p := range traj {
		resp.Points[i] = Vec{p.X, p.Y, p.Z}
	}
	return resp
}
