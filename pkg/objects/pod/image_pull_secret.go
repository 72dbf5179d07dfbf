package pod

import (
	corev1 "k8s.io/api/core/v1"
)

var _ Modifier = ImagePullSecretModifier{}

// ImagePullSecretModifier stays disabled without a secret name, leaving
// ImagePullSecrets nil. An empty list is not the same as "no pull secrets"
// to the apiserver.
type ImagePullSecretModifier struct {
	props Properties
}

func newImagePullSecretModifier(props Properties) ImagePullSecretModifier {
	return ImagePullSecretModifier{props: props}
}

func (mod ImagePullSecretModifier) Enabled() bool {
	return mod.props.ImagePullSecret != ""
}

func (mod ImagePullSecretModifier) Modify(pod *corev1.Pod) error {
	pod.Spec.ImagePullSecrets = []corev1.LocalObjectReference{
		{Name: mod.props.ImagePullSecret},
	}

	return nil
}
