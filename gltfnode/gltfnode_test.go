package gltfnode

import (
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/solarlune/precise"
)

const hierarchyJSON = `{
	"asset": {"version": "2.0"},
	"nodes": [
		{"name": "root", "translation": [1, 0, 0], "rotation": [0, 0.7071067811865476, 0, 0.7071067811865476], "scale": [2, 2, 2], "children": [1]},
		{"name": "child", "translation": [0, 0, 1], "children": [2]},
		{"name": "leaf", "matrix": [0, 0, -1, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 5, 0, 1]},
		{"name": "loose"}
	]
}`

func decodeTest(t *testing.T, json string) *gltf.Document {
	doc, err := Decode([]byte(json))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestLocalTransform(t *testing.T) {

	doc := decodeTest(t, hierarchyJSON)

	root := LocalTransform(doc.Nodes[0])
	if root.Position != precise.NewVector3(1, 0, 0) || root.Scale != precise.NewVector3(2, 2, 2) || !root.Rotation.Equals(precise.NewQuaternionAxisAngle(90, precise.WorldUp)) {
		t.Fatal("root:", root)
	}

	leaf := LocalTransform(doc.Nodes[2])
	want := precise.Transform{
		Position: precise.NewVector3(0, 5, 0),
		Rotation: precise.NewQuaternionAxisAngle(90, precise.WorldUp),
		Scale:    precise.NewVector3One(),
	}
	if !leaf.Equals(want) {
		t.Fatal("a node's Matrix should be decomposed, got", leaf)
	}

	if got := LocalTransform(&gltf.Node{}); !got.Equals(precise.NewTransform()) {
		t.Fatal("a zeroed node should have the default Transform, got", got)
	}

	mirrored := &gltf.Node{Matrix: [16]float64{-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}}
	if got := LocalTransform(mirrored); got.Scale != precise.NewVector3(-1, 1, 1) || !got.Rotation.Equals(precise.NewQuaternionIdentity()) {
		t.Fatal("a mirrored Matrix should give a negative X scale, got", got)
	}

}

func TestSetLocalTransform(t *testing.T) {

	node := &gltf.Node{Matrix: [16]float64{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 1, 1, 1, 1}}

	transform := precise.Transform{
		Position: precise.NewVector3(4, 5, 6),
		Rotation: precise.NewQuaternionEuler(10, 20, 30),
		Scale:    precise.NewVector3(1, 2, 3),
	}

	SetLocalTransform(node, transform)

	if node.Matrix != identityMatrix {
		t.Fatal("SetLocalTransform should reset the node's Matrix")
	}

	if got := LocalTransform(node); !got.Equals(transform) {
		t.Fatal("round trip:", got)
	}

}

func TestWorldTransforms(t *testing.T) {

	doc := decodeTest(t, hierarchyJSON)

	world, err := WorldTransforms(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(world) != 4 {
		t.Fatal("expected a Transform per node, got", len(world))
	}

	if child := world[1]; !child.Position.Equals(precise.NewVector3(3, 0, 0)) || !child.Rotation.Equals(precise.NewQuaternionAxisAngle(90, precise.WorldUp)) {
		t.Fatal("child:", child)
	}

	leaf := world[2]
	if !leaf.Position.Equals(precise.NewVector3(3, 10, 0)) || !leaf.Rotation.Equals(precise.NewQuaternionAxisAngle(180, precise.WorldUp)) || leaf.Scale != precise.NewVector3(2, 2, 2) {
		t.Fatal("leaf:", leaf)
	}

	if !world[3].Equals(precise.NewTransform()) {
		t.Fatal("unparented nodes are roots:", world[3])
	}

}

func TestWorldTransformErrors(t *testing.T) {

	cycle := decodeTest(t, `{"asset": {"version": "2.0"}, "nodes": [{"children": [1]}, {"children": [0]}, {}]}`)

	if _, err := WorldTransforms(cycle); !errors.Is(err, ErrNodeCycle) {
		t.Fatal("expected ErrNodeCycle, got", err)
	}

	selfParent := decodeTest(t, `{"asset": {"version": "2.0"}, "nodes": [{"children": [1]}, {"children": [1]}]}`)

	if _, err := WorldTransforms(selfParent); !errors.Is(err, ErrNodeCycle) {
		t.Fatal("expected ErrNodeCycle, got", err)
	}

	outOfRange := decodeTest(t, `{"asset": {"version": "2.0"}, "nodes": [{"children": [5]}]}`)

	if _, err := WorldTransforms(outOfRange); !errors.Is(err, ErrNodeIndex) {
		t.Fatal("expected ErrNodeIndex, got", err)
	}

}

func TestAnimations(t *testing.T) {

	doc := gltf.NewDocument()
	doc.Nodes = []*gltf.Node{{Name: "arm"}, {}}

	times := modeler.WriteAccessor(doc, gltf.TargetNone, []float32{0, 1, 2})
	moves := modeler.WriteAccessor(doc, gltf.TargetNone, [][3]float32{{0, 0, 0}, {2, 4, 6}, {4, 8, 12}})
	turns := modeler.WriteAccessor(doc, gltf.TargetNone, [][4]float32{{0, 0, 0, 1}, {0, 0.70710677, 0, 0.70710677}, {0, 1, 0, 0}})

	doc.Animations = []*gltf.Animation{{
		Name: "wave",
		Samplers: []*gltf.AnimationSampler{
			{Input: times, Output: moves},
			{Input: times, Output: turns, Interpolation: gltf.InterpolationStep},
		},
		Channels: []*gltf.Channel{
			{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(0), Path: gltf.TRSTranslation}},
			{Sampler: gltf.Index(1), Target: gltf.ChannelTarget{Node: gltf.Index(1), Path: gltf.TRSRotation}},
		},
	}}

	animations, err := Animations(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(animations) != 1 || animations[0].Name != "wave" || animations[0].Length != 2 {
		t.Fatal("expected one animation two seconds long, got", animations)
	}

	anim := animations[0]

	arm := anim.Channels["arm"]
	if arm == nil {
		t.Fatal("channels should be named after their node")
	}

	if got := arm.Tracks[precise.TrackTypePosition].ValueAsVector(0.5); !got.Equals(precise.NewVector3(1, 2, 3)) {
		t.Fatal("translation at 0.5:", got)
	}

	unnamed := anim.Channels[ChannelName(doc, 1)]
	if unnamed == nil {
		t.Fatal("unnamed nodes should get a channel named after their index")
	}

	rotation := unnamed.Tracks[precise.TrackTypeRotation]

	if rotation.Interpolation != precise.InterpolationStep {
		t.Fatal("sampler interpolation was not carried over")
	}

	if got := rotation.ValueAsQuaternion(1.5); !got.Equals(precise.NewQuaternionAxisAngle(90, precise.WorldUp)) {
		t.Fatal("rotation at 1.5:", got)
	}

	player := precise.NewAnimationPlayer()
	player.Play(anim)
	player.Update(1)

	if tf, _ := player.Transform("arm"); !tf.Position.Equals(precise.NewVector3(2, 4, 6)) {
		t.Fatal("imported animations should play back, got", tf)
	}

}

func TestAnimationsQuantizedRotations(t *testing.T) {

	doc := gltf.NewDocument()
	doc.Nodes = []*gltf.Node{{Name: "shorts"}, {Name: "bytes"}, {Name: "moved"}}

	times := modeler.WriteAccessor(doc, gltf.TargetNone, []float32{0, 1})
	shorts := modeler.WriteAccessor(doc, gltf.TargetNone, [][4]int16{{0, 0, 0, 32767}, {0, 23170, 0, 23170}})
	signedBytes := modeler.WriteAccessor(doc, gltf.TargetNone, [][4]int8{{0, 0, 0, 127}, {0, -128, 0, 0}})

	doc.Animations = []*gltf.Animation{{
		Samplers: []*gltf.AnimationSampler{
			{Input: times, Output: shorts},
			{Input: times, Output: signedBytes},
		},
		Channels: []*gltf.Channel{
			{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(0), Path: gltf.TRSRotation}},
			{Sampler: gltf.Index(1), Target: gltf.ChannelTarget{Node: gltf.Index(1), Path: gltf.TRSRotation}},
		},
	}}

	animations, err := Animations(doc)
	if err != nil {
		t.Fatal(err)
	}

	anim := animations[0]

	if got := anim.Channels["shorts"].Tracks[precise.TrackTypeRotation].ValueAsQuaternion(1); !got.Equals(precise.NewQuaternionAxisAngle(90, precise.WorldUp)) {
		t.Fatal("normalized shorts should dequantize to a rotation, got", got)
	}

	if got := anim.Channels["bytes"].Tracks[precise.TrackTypeRotation].ValueAsQuaternion(1); got != precise.NewQuaternion(0, -1, 0, 0) {
		t.Fatal("-128 should clamp to -1 when dequantized, got", got)
	}

	// Core glTF only allows float translations
	moves := modeler.WriteAccessor(doc, gltf.TargetNone, [][3]int16{{0, 0, 0}, {1, 2, 3}})
	doc.Animations[0].Samplers = append(doc.Animations[0].Samplers, &gltf.AnimationSampler{Input: times, Output: moves})
	doc.Animations[0].Channels = append(doc.Animations[0].Channels, &gltf.Channel{
		Sampler: gltf.Index(2), Target: gltf.ChannelTarget{Node: gltf.Index(2), Path: gltf.TRSTranslation},
	})

	if _, err := Animations(doc); !errors.Is(err, ErrAnimationData) {
		t.Fatal("integer translations should fail with ErrAnimationData, got", err)
	}

}

func TestInterpolation(t *testing.T) {

	if Interpolation(gltf.InterpolationStep) != precise.InterpolationStep {
		t.Fatal("step")
	}

	if Interpolation(gltf.InterpolationLinear) != precise.InterpolationLinear || Interpolation(gltf.InterpolationCubicSpline) != precise.InterpolationLinear {
		t.Fatal("linear and cubic spline samplers should play back linearly")
	}

}
