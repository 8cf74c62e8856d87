package cmd

import (
	"fmt"

	"github.com/solarlune/precise/gltfnode"
	"github.com/spf13/cobra"
)

func (a *app) gltfCommand() *cobra.Command {

	local, animations := false, false

	cmd := &cobra.Command{
		Use:   "gltf FILE",
		Short: "Print the node transforms (and optionally animations) of a glTF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			doc, err := gltfnode.Open(args[0])
			if err != nil {
				return err
			}

			a.log.Printf("%s: %d nodes, %d animations", args[0], len(doc.Nodes), len(doc.Animations))

			world, err := gltfnode.WorldTransforms(doc)
			if err != nil {
				return err
			}

			entries := []entry{}

			for i, node := range doc.Nodes {

				transform := world[i]
				if local {
					transform = gltfnode.LocalTransform(node)
				}

				entries = append(entries, group(gltfnode.ChannelName(doc, i),
					vector("position", transform.Position),
					quaternion("rotation", transform.Rotation),
					vector("euler", transform.Rotation.ToEuler()),
					vector("scale", transform.Scale),
				))

			}

			if animations {

				anims, err := gltfnode.Animations(doc)
				if err != nil {
					return err
				}

				for _, anim := range anims {
					entries = append(entries, group("animation "+anim.Name,
						number("length", anim.Length),
						text("channels", fmt.Sprint(len(anim.Channels))),
					))
				}

			}

			return a.printer(cmd).print(entries...)

		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "print each node's transform relative to its parent")
	cmd.Flags().BoolVar(&animations, "animations", false, "also list the file's animations")

	return cmd

}
