// SPDX-License-Identifier: MIT

// Package motionreg blends two skeletal animation clips along a
// registration curve.
//
// The pipeline runs in four stages, each in its own subpackage:
//
//	motion/    — skeletons, clips, forward kinematics, YAML clip documents
//	rigid/     — ground-plane rigid transforms and the point cloud aligner
//	distmap/   — pairwise frame distances and alignments, filled in parallel
//	timewarp/  — slope-limited monotone path through the distance map
//	regcurve/  — per-step alignments with discontinuity correction
//	blend/     — the weighted integration loop producing the blended clip
//
// Supporting packages:
//
//	config/    — YAML engine settings
//	builder/   — synthetic walk and track clips for demos and tests
//	regplot/   — distance map and trajectory plots
//	cmd/motionblend — command-line front end
//
// Quick start:
//
//	res, err := blend.Blend(ctx, walkA, walkB, blend.Constant(0.5, walkA.Frames()))
//	if err != nil {
//		return err
//	}
//	_ = motion.Encode(os.Stdout, res.Clip)
//
// All clips share one convention: right-handed, Y up, ground plane XZ.
package motionreg
