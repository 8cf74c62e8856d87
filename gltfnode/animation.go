package gltfnode

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/solarlune/precise"
)

// ChannelName returns the name animation channels use for the node at the given index; the node's name, or "node<index>"
// if it has none.
func ChannelName(doc *gltf.Document, index int) string {
	if index >= 0 && index < len(doc.Nodes) && doc.Nodes[index].Name != "" {
		return doc.Nodes[index].Name
	}
	return fmt.Sprintf("node%d", index)
}

// Animations reads every animation in the document into a precise.Animation, with one channel per animated node and
// one track per animated property. Morph target weights are skipped. Rotations may be stored as floats or as normalized
// integers; translations, scales, and keyframe times must be floats, as core glTF requires, or ErrAnimationData is returned.
func Animations(doc *gltf.Document) ([]*precise.Animation, error) {

	animations := make([]*precise.Animation, 0, len(doc.Animations))

	for animIndex, gltfAnim := range doc.Animations {

		name := gltfAnim.Name
		if name == "" {
			name = fmt.Sprintf("animation%d", animIndex)
		}

		anim := precise.NewAnimation(name)

		for _, channel := range gltfAnim.Channels {

			if channel.Sampler == nil || channel.Target.Path == gltf.TRSWeights {
				continue
			}

			samplerIndex := int(*channel.Sampler)
			if samplerIndex < 0 || samplerIndex >= len(gltfAnim.Samplers) {
				return nil, fmt.Errorf("%w: animation %s uses sampler %d of %d", ErrAnimationData, name, samplerIndex, len(gltfAnim.Samplers))
			}

			sampler := gltfAnim.Samplers[samplerIndex]

			channelName := "root"
			if channel.Target.Node != nil {
				channelName = ChannelName(doc, int(*channel.Target.Node))
			}

			animChannel := anim.Channels[channelName]
			if animChannel == nil {
				animChannel = anim.AddChannel(channelName)
			}

			times, err := readFloats(doc, int(sampler.Input))
			if err != nil {
				return nil, err
			}

			// Cubic spline samplers store an in-tangent, the value, and an out-tangent for each keyframe
			stride, offset := 1, 0
			if sampler.Interpolation == gltf.InterpolationCubicSpline {
				stride, offset = 3, 1
			}

			switch channel.Target.Path {

			case gltf.TRSTranslation, gltf.TRSScale:

				values, err := readVec3s(doc, int(sampler.Output))
				if err != nil {
					return nil, err
				}

				if len(values) < len(times)*stride {
					return nil, fmt.Errorf("%w: animation %s has %d keyframe times but %d values", ErrAnimationData, name, len(times), len(values))
				}

				trackType := precise.TrackTypePosition
				if channel.Target.Path == gltf.TRSScale {
					trackType = precise.TrackTypeScale
				}

				track := animChannel.AddTrack(trackType)
				track.Interpolation = Interpolation(sampler.Interpolation)

				for i, t := range times {
					v := values[i*stride+offset]
					track.AddKeyframe(float64(t), precise.NewVector3(float64(v[0]), float64(v[1]), float64(v[2])))
				}

			case gltf.TRSRotation:

				values, err := readVec4s(doc, int(sampler.Output))
				if err != nil {
					return nil, err
				}

				if len(values) < len(times)*stride {
					return nil, fmt.Errorf("%w: animation %s has %d keyframe times but %d values", ErrAnimationData, name, len(times), len(values))
				}

				track := animChannel.AddTrack(precise.TrackTypeRotation)
				track.Interpolation = Interpolation(sampler.Interpolation)

				for i, t := range times {
					v := values[i*stride+offset]
					track.AddKeyframe(float64(t), precise.NewQuaternion(v[0], v[1], v[2], v[3]).Unit())
				}

			}

		}

		anim.UpdateLength()

		animations = append(animations, anim)

	}

	return animations, nil

}

func readAccessor(doc *gltf.Document, index int) (interface{}, error) {

	if index < 0 || index >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: accessor %d of %d", ErrAnimationData, index, len(doc.Accessors))
	}

	data, err := modeler.ReadAccessor(doc, doc.Accessors[index], nil)
	if err != nil {
		return nil, fmt.Errorf("gltfnode: read accessor %d: %w", index, err)
	}

	return data, nil

}

func readFloats(doc *gltf.Document, index int) ([]float32, error) {
	data, err := readAccessor(doc, index)
	if err != nil {
		return nil, err
	}
	values, ok := data.([]float32)
	if !ok {
		return nil, fmt.Errorf("%w: accessor %d holds %T, not keyframe times", ErrAnimationData, index, data)
	}
	return values, nil
}

func readVec3s(doc *gltf.Document, index int) ([][3]float32, error) {
	data, err := readAccessor(doc, index)
	if err != nil {
		return nil, err
	}
	values, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("%w: accessor %d holds %T, not float vectors", ErrAnimationData, index, data)
	}
	return values, nil
}

// readVec4s reads rotation keyframes. Besides floats, glTF allows rotations stored as normalized signed or unsigned
// bytes and shorts; those are dequantized the way the glTF spec describes.
func readVec4s(doc *gltf.Document, index int) ([][4]float64, error) {
	data, err := readAccessor(doc, index)
	if err != nil {
		return nil, err
	}

	switch values := data.(type) {
	case [][4]float32:
		return dequantize(values, func(c float32) float64 { return float64(c) }), nil
	case [][4]int8:
		return dequantize(values, func(c int8) float64 { return math.Max(float64(c)/math.MaxInt8, -1) }), nil
	case [][4]uint8:
		return dequantize(values, func(c uint8) float64 { return float64(c) / math.MaxUint8 }), nil
	case [][4]int16:
		return dequantize(values, func(c int16) float64 { return math.Max(float64(c)/math.MaxInt16, -1) }), nil
	case [][4]uint16:
		return dequantize(values, func(c uint16) float64 { return float64(c) / math.MaxUint16 }), nil
	}

	return nil, fmt.Errorf("%w: accessor %d holds %T, not rotations", ErrAnimationData, index, data)
}

func dequantize[C int8 | uint8 | int16 | uint16 | float32](values [][4]C, convert func(C) float64) [][4]float64 {
	out := make([][4]float64, len(values))
	for i, v := range values {
		out[i] = [4]float64{convert(v[0]), convert(v[1]), convert(v[2]), convert(v[3])}
	}
	return out
}
