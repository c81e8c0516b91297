package render

import (
	"fmt"

	"github.com/df07/pathtracer/pkg/core"
)

// OutputFilename builds the `{scene}_{timestamp}_{params}.png` name used
// for a render's output file, where params encodes spp/depth so two runs
// of the same scene with different sampling settings never collide.
func OutputFilename(sceneName string, timestamp int64, cfg core.SamplingConfig) string {
	return fmt.Sprintf("%s_%d_spp%d-depth%d.png", sceneName, timestamp, cfg.SamplesPerPixel, cfg.MaxDepth)
}
