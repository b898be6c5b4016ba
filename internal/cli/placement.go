package cli

import (
	"github.com/agentx-labs/filestage/internal/stage"
	"github.com/spf13/cobra"
)

// placementFlags are the area and foldering flags shared by the commands
// that build a file.
type placementFlags struct {
	permanent bool
	direct    bool
}

func (p *placementFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.permanent, "permanent", false, "Store in the permanent area instead of the session area")
	cmd.Flags().BoolVar(&p.direct, "direct", false, "Put the file directly under the area root, without a unique folder")
}

func (p *placementFlags) apply(b *stage.Builder) *stage.Builder {
	if p.permanent {
		b.StorePermanently()
	} else {
		b.ThisSessionOnly()
	}
	if p.direct {
		b.PutDirectlyInTargetFolder()
	} else {
		b.PutInUniqueFolder()
	}
	return b
}
