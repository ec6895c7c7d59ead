package surfaces

// Names resolved for every program.
const (
	AttrPosition   = "vs_Pos"
	UniformView    = "u_View"
	UniformScreen  = "u_Screen"
	UniformUp      = "u_Up"
	UniformEye     = "u_Eye"
	UniformTime    = "u_Time"
	UniformTexture = "u_Texture"
)

// absentLocation is what the driver returns for an unknown name.
const absentLocation = -1

// Slot is a resolved attribute or uniform location that may be absent.
type Slot struct {
	loc     int32
	present bool
}

func resolved(loc int32) Slot {
	if loc == absentLocation {
		return Slot{}
	}
	return Slot{loc: loc, present: true}
}

// Location returns the location and whether the name was found.
func (s Slot) Location() (int32, bool) {
	return s.loc, s.present
}

// Present reports whether the name was found.
func (s Slot) Present() bool { return s.present }

// slots is the fixed table resolved once per program.
type slots struct {
	pos     Slot
	view    Slot
	screen  Slot
	up      Slot
	eye     Slot
	time    Slot
	texture Slot
}

func resolveSlots(d Driver, p ProgramHandle) slots {
	return slots{
		pos:     resolved(d.AttribLocation(p, AttrPosition)),
		view:    resolved(d.UniformLocation(p, UniformView)),
		screen:  resolved(d.UniformLocation(p, UniformScreen)),
		up:      resolved(d.UniformLocation(p, UniformUp)),
		eye:     resolved(d.UniformLocation(p, UniformEye)),
		time:    resolved(d.UniformLocation(p, UniformTime)),
		texture: resolved(d.UniformLocation(p, UniformTexture)),
	}
}

func (s *slots) byName(name string) Slot {
	switch name {
	case AttrPosition:
		return s.pos
	case UniformView:
		return s.view
	case UniformScreen:
		return s.screen
	case UniformUp:
		return s.up
	case UniformEye:
		return s.eye
	case UniformTime:
		return s.time
	case UniformTexture:
		return s.texture
	default:
		return Slot{}
	}
}

func (s *slots) absent() []string {
	var names []string
	for _, name := range []string{AttrPosition, UniformView, UniformScreen, UniformUp, UniformEye, UniformTime, UniformTexture} {
		if !s.byName(name).present {
			names = append(names, name)
		}
	}
	return names
}
