package pod

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"
)

var _ Modifier = SecurityContextModifier{}

// SecurityContextModifier always attaches a pod security context; uid and
// gid are set independently of each other and only when present, so the
// cluster never sees an explicit zero where the caller meant "unset".
type SecurityContextModifier struct {
	props Properties
}

func newSecurityContextModifier(props Properties) SecurityContextModifier {
	return SecurityContextModifier{props: props}
}

func (mod SecurityContextModifier) Enabled() bool {
	return true
}

func (mod SecurityContextModifier) Modify(pod *corev1.Pod) error {
	securityContext := corev1.PodSecurityContext{}

	if mod.props.FSGroup != nil {
		securityContext.FSGroup = ptr.To(*mod.props.FSGroup)
	}

	if mod.props.RunAsUser != nil {
		securityContext.RunAsUser = ptr.To(*mod.props.RunAsUser)
	}

	pod.Spec.SecurityContext = &securityContext

	return nil
}
