package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solarlune/precise"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inexpo":     ease.InExpo,
	"outexpo":    ease.OutExpo,
	"inoutexpo":  ease.InOutExpo,
	"inback":     ease.InBack,
	"outback":    ease.OutBack,
	"inoutback":  ease.InOutBack,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

func easingNames() string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (a *app) animateCommand() *cobra.Command {

	var from, to []float64
	easing := "linear"
	duration := 1.0
	steps := 4

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Print the rotations an eased tween passes through",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			easeFunc, ok := easings[strings.ToLower(easing)]
			if !ok {
				return fmt.Errorf("unknown easing %q; try one of %s", easing, easingNames())
			}

			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}

			if duration <= 0 {
				return fmt.Errorf("--duration must be above 0, got %g", duration)
			}

			start, err := eulerRotation("from", from)
			if err != nil {
				return err
			}

			end, err := eulerRotation("to", to)
			if err != nil {
				return err
			}

			tween := precise.NewRotationTween(start, end, duration, easeFunc)

			step := duration / float64(steps)

			entries := []entry{group(fmt.Sprintf("t=%s", a.printer(cmd).formatFloat(0)), rotationEntries(start)...)}

			for i := 1; i <= steps; i++ {
				q, finished := tween.Update(step)
				entries = append(entries, group(fmt.Sprintf("t=%s", a.printer(cmd).formatFloat(step*float64(i))), rotationEntries(q)...))
				if finished {
					a.log.Printf("tween finished after step %d", i)
				}
			}

			return a.printer(cmd).print(entries...)

		},
	}

	eulerFlag(cmd, "from", &from, "starting rotation as Euler angles")
	eulerFlag(cmd, "to", &to, "ending rotation as Euler angles")
	cmd.Flags().StringVar(&easing, "ease", easing, "easing function ("+easingNames()+")")
	cmd.Flags().Float64Var(&duration, "duration", duration, "tween length in seconds")
	cmd.Flags().IntVar(&steps, "steps", steps, "number of samples after the start")

	return cmd

}
