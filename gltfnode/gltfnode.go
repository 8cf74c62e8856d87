// Package gltfnode reads and writes glTF node transforms and animations at double precision, on top of documents decoded
// by github.com/qmuntal/gltf.
package gltfnode

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/solarlune/precise"
)

var (
	ErrNodeCycle     = errors.New("gltfnode: node hierarchy contains a cycle")
	ErrNodeIndex     = errors.New("gltfnode: node index out of range")
	ErrAnimationData = errors.New("gltfnode: unsupported animation data")
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// Open loads a .gltf or .glb file from disk.
func Open(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfnode: open %s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes a .gltf or .glb document from the byte data given.
func Decode(data []byte) (*gltf.Document, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("gltfnode: decode: %w", err)
	}

	return doc, nil

}

// LocalTransform returns the node's transform relative to its parent. If the node's Matrix is set (that is, neither
// all zeroes nor the identity), it is decomposed into position, rotation, and scale; otherwise the node's translation,
// rotation, and scale are used. A zeroed rotation is read as the identity, and a zeroed scale as one, so nodes built in
// code without those fields still make sense.
func LocalTransform(node *gltf.Node) precise.Transform {

	if node.Matrix != identityMatrix && node.Matrix != [16]float64{} {
		return decompose(node.Matrix)
	}

	transform := precise.NewTransform()

	transform.Position = precise.NewVector3(node.Translation[0], node.Translation[1], node.Translation[2])

	if node.Rotation != [4]float64{} {
		transform.Rotation = precise.NewQuaternion(node.Rotation[0], node.Rotation[1], node.Rotation[2], node.Rotation[3]).Unit()
	}

	if node.Scale != [3]float64{} {
		transform.Scale = precise.NewVector3(node.Scale[0], node.Scale[1], node.Scale[2])
	}

	return transform

}

// SetLocalTransform writes the Transform to the node's translation, rotation, and scale, and resets its Matrix to the
// identity so the TRS values take effect.
func SetLocalTransform(node *gltf.Node, transform precise.Transform) {
	node.Translation = transform.Position.Floats()
	node.Rotation = transform.Rotation.Unit().Floats()
	node.Scale = transform.Scale.Floats()
	node.Matrix = identityMatrix
}

// decompose splits a column-major glTF matrix into a Transform. A mirrored basis is carried by a negative X scale.
func decompose(m [16]float64) precise.Transform {

	right := precise.NewVector3(m[0], m[1], m[2])
	up := precise.NewVector3(m[4], m[5], m[6])
	forward := precise.NewVector3(m[8], m[9], m[10])

	scale := precise.NewVector3(right.Magnitude(), up.Magnitude(), forward.Magnitude())

	if right.Cross(up).Dot(forward) < 0 {
		scale.X = -scale.X
		right = right.Invert()
	}

	return precise.Transform{
		Position: precise.NewVector3(m[12], m[13], m[14]),
		Rotation: precise.NewQuaternionFromBasis(right.Unit(), up.Unit(), forward.Unit()).Unit(),
		Scale:    scale,
	}

}

// WorldTransforms returns the world transform of every node in the document, indexed the same way as doc.Nodes.
// Nodes that aren't listed as any other node's child are treated as roots.
func WorldTransforms(doc *gltf.Document) ([]precise.Transform, error) {

	world := make([]precise.Transform, len(doc.Nodes))
	parented := make([]bool, len(doc.Nodes))

	for i, node := range doc.Nodes {
		for _, c := range node.Children {
			child := int(c)
			if child < 0 || child >= len(doc.Nodes) {
				return nil, fmt.Errorf("%w: node %d lists child %d of %d nodes", ErrNodeIndex, i, child, len(doc.Nodes))
			}
			parented[child] = true
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)

	state := make([]int, len(doc.Nodes))

	var walk func(index int, parent precise.Transform) error

	walk = func(index int, parent precise.Transform) error {

		if state[index] == visiting {
			return fmt.Errorf("%w: node %d is its own ancestor", ErrNodeCycle, index)
		}

		state[index] = visiting

		node := doc.Nodes[index]
		world[index] = parent.Compose(LocalTransform(node))

		for _, c := range node.Children {
			if err := walk(int(c), world[index]); err != nil {
				return err
			}
		}

		state[index] = done

		return nil

	}

	for i := range doc.Nodes {
		if !parented[i] {
			if err := walk(i, precise.NewTransform()); err != nil {
				return nil, err
			}
		}
	}

	// Anything a root can't reach hangs off a loop of nodes
	for i, s := range state {
		if s != done {
			return nil, fmt.Errorf("%w: node %d can't be reached from a root node", ErrNodeCycle, i)
		}
	}

	return world, nil

}

// Interpolation returns the track interpolation for a glTF sampler mode. Cubic spline samplers are played back linearly
// between their keyframe values.
func Interpolation(mode gltf.Interpolation) precise.Interpolation {
	if mode == gltf.InterpolationStep {
		return precise.InterpolationStep
	}
	return precise.InterpolationLinear
}
