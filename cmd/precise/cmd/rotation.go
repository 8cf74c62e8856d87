package cmd

import (
	"fmt"

	"github.com/solarlune/precise"
	"github.com/spf13/cobra"
)

func eulerFlag(cmd *cobra.Command, name string, target *[]float64, usage string) {
	cmd.Flags().Float64SliceVar(target, name, []float64{0, 0, 0}, usage)
}

func eulerRotation(flagName string, values []float64) (precise.Quaternion, error) {
	if len(values) != 3 {
		return precise.Quaternion{}, fmt.Errorf("--%s needs 3 angles, got %d", flagName, len(values))
	}
	return precise.NewQuaternionEuler(values[0], values[1], values[2]), nil
}

func (a *app) eulerCommand() *cobra.Command {

	fromQuaternion := false

	cmd := &cobra.Command{
		Use:   "euler X Y Z | euler --quaternion X Y Z W",
		Short: "Convert Euler angles to a rotation, or a quaternion to Euler angles",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {

			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			var q precise.Quaternion

			if fromQuaternion {
				if len(values) != 4 {
					return fmt.Errorf("--quaternion needs 4 components, got %d", len(values))
				}
				raw := precise.NewQuaternion(values[0], values[1], values[2], values[3])
				q = raw.Unit()
				a.log.Printf("normalized %s (length %g) to %s", raw, raw.Magnitude(), q)
			} else {
				if len(values) != 3 {
					return fmt.Errorf("expected 3 angles, got %d", len(values))
				}
				q = precise.NewQuaternionEuler(values[0], values[1], values[2])
			}

			return a.printer(cmd).print(rotationEntries(q)...)

		},
	}

	cmd.Flags().BoolVarP(&fromQuaternion, "quaternion", "q", false, "read the arguments as a quaternion (x y z w)")

	return cmd

}

func (a *app) axisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "axis ANGLE X Y Z",
		Short: "Build a rotation of ANGLE degrees around an axis",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {

			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			axis := precise.NewVector3(values[1], values[2], values[3])
			if axis.IsZero() {
				a.log.Print("the axis has no length; using the identity rotation")
			}

			return a.printer(cmd).print(rotationEntries(precise.NewQuaternionAxisAngle(values[0], axis))...)

		},
	}
}

func (a *app) lookCommand() *cobra.Command {

	var up []float64

	cmd := &cobra.Command{
		Use:   "look X Y Z",
		Short: "Build the rotation that faces along a direction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {

			forward, err := parseVector(args)
			if err != nil {
				return err
			}

			upVec := precise.NewVector3(a.cfg.Look.Up[0], a.cfg.Look.Up[1], a.cfg.Look.Up[2])
			if cmd.Flags().Changed("up") {
				if len(up) != 3 {
					return fmt.Errorf("--up needs 3 components, got %d", len(up))
				}
				upVec = precise.NewVector3(up[0], up[1], up[2])
			}

			a.log.Printf("looking along %s with up %s", forward, upVec)

			q := precise.NewQuaternionLookRotation(forward, upVec)

			entries := append(rotationEntries(q), vector("forward", q.Forward()), vector("up", q.Up()))

			return a.printer(cmd).print(entries...)

		},
	}

	cmd.Flags().Float64SliceVar(&up, "up", nil, "up direction (default from config, or 0,1,0)")

	return cmd

}

func (a *app) slerpCommand() *cobra.Command {

	var from, to []float64
	linear, unclamped := false, false

	cmd := &cobra.Command{
		Use:   "slerp T",
		Short: "Interpolate between two rotations given as Euler angles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			start, err := eulerRotation("from", from)
			if err != nil {
				return err
			}

			end, err := eulerRotation("to", to)
			if err != nil {
				return err
			}

			t := values[0]

			var q precise.Quaternion

			switch {
			case linear && unclamped:
				q = start.LerpUnclamped(end, t)
			case linear:
				q = start.Lerp(end, t)
			case unclamped:
				q = start.SlerpUnclamped(end, t)
			default:
				q = start.Slerp(end, t)
			}

			a.log.Printf("blending %.3f of the %.3f degrees between the rotations", t, start.Angle(end))

			return a.printer(cmd).print(rotationEntries(q)...)

		},
	}

	eulerFlag(cmd, "from", &from, "starting rotation as Euler angles")
	eulerFlag(cmd, "to", &to, "ending rotation as Euler angles")
	cmd.Flags().BoolVar(&linear, "lerp", false, "blend linearly and normalize instead of spherically")
	cmd.Flags().BoolVar(&unclamped, "unclamped", false, "don't clamp T to [0, 1]")

	return cmd

}

func (a *app) rotateCommand() *cobra.Command {

	var euler, axis []float64
	angle := 0.0

	cmd := &cobra.Command{
		Use:   "rotate X Y Z",
		Short: "Rotate a point by Euler angles, or around an axis",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {

			point, err := parseVector(args)
			if err != nil {
				return err
			}

			var q precise.Quaternion

			if cmd.Flags().Changed("axis") {
				if len(axis) != 3 {
					return fmt.Errorf("--axis needs 3 components, got %d", len(axis))
				}
				q = precise.NewQuaternionAxisAngle(angle, precise.NewVector3(axis[0], axis[1], axis[2]))
			} else if q, err = eulerRotation("euler", euler); err != nil {
				return err
			}

			a.log.Printf("rotating %s by %s", point, q)

			return a.printer(cmd).print(vector("point", q.RotateVector(point)))

		},
	}

	eulerFlag(cmd, "euler", &euler, "rotation as Euler angles")
	cmd.Flags().Float64SliceVar(&axis, "axis", nil, "rotate around this axis instead, by --angle degrees")
	cmd.Flags().Float64Var(&angle, "angle", 0, "degrees to rotate around --axis")

	return cmd

}

func (a *app) angleCommand() *cobra.Command {

	var from, to []float64

	cmd := &cobra.Command{
		Use:   "angle",
		Short: "Measure the angle between two rotations given as Euler angles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			start, err := eulerRotation("from", from)
			if err != nil {
				return err
			}

			end, err := eulerRotation("to", to)
			if err != nil {
				return err
			}

			return a.printer(cmd).print(
				number("angle", start.Angle(end)),
				quaternion("difference", end.Mult(start.Inverted()).Unit()),
			)

		},
	}

	eulerFlag(cmd, "from", &from, "first rotation as Euler angles")
	eulerFlag(cmd, "to", &to, "second rotation as Euler angles")

	return cmd

}
