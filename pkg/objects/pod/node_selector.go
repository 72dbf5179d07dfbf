package pod

import (
	"github.com/nbspawn/nbspawn/pkg/util/maputil"
	corev1 "k8s.io/api/core/v1"
)

var _ Modifier = NodeSelectorModifier{}

type NodeSelectorModifier struct {
	props Properties
}

func newNodeSelectorModifier(props Properties) NodeSelectorModifier {
	return NodeSelectorModifier{props: props}
}

func (mod NodeSelectorModifier) Enabled() bool {
	return len(mod.props.NodeSelector) > 0
}

func (mod NodeSelectorModifier) Modify(pod *corev1.Pod) error {
	pod.Spec.NodeSelector = maputil.CopyMap(mod.props.NodeSelector)

	return nil
}
