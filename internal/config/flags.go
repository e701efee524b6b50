package config

import "flag"

// Flags are command-line overrides. Zero values leave the loaded config untouched.
type Flags struct {
	ConfigPath string
	Debug      bool
	Frames     int
	DeltaTime  float64
	MeshFile   string
	UseMesh    bool
	WrapAngles bool
}

// RegisterFlags binds the overrides to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Frames, "frames", 0, "Number of frames to simulate")
	fs.Float64Var(&f.DeltaTime, "dt", 0, "Frame time in seconds")
	fs.StringVar(&f.MeshFile, "mesh", "", "Binary mesh file to sample heights from")
	fs.BoolVar(&f.UseMesh, "real-height", false, "Sample mesh vertices instead of the box")
	fs.BoolVar(&f.WrapAngles, "wrap-angles", false, "Wrap Euler deltas into (-180, 180]")
	return f
}

func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Frames > 0 {
		cfg.Simulation.Frames = f.Frames
	}
	if f.DeltaTime > 0 {
		cfg.Simulation.DeltaTime = float32(f.DeltaTime)
	}
	if f.MeshFile != "" {
		cfg.Shape.MeshFile = f.MeshFile
		cfg.Shape.UseRealHeightRange = true
	}
	if f.UseMesh {
		cfg.Shape.UseRealHeightRange = true
	}
	if f.WrapAngles {
		cfg.Water.WrapAngles = true
	}
}
