package container

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

// FindContainerInPodSpec returns a pointer into the pod spec's container
// slice, so modifications through it are visible on the pod.
func FindContainerInPodSpec(podSpec *corev1.PodSpec, containerName string) *corev1.Container {
	for i := range podSpec.Containers {
		if podSpec.Containers[i].Name == containerName {
			return &podSpec.Containers[i]
		}
	}

	return nil
}

func FindContainerInPod(pod corev1.Pod, containerName string) (*corev1.Container, error) {
	containerInSpec := FindContainerInPodSpec(&pod.Spec, containerName)
	if containerInSpec != nil {
		return containerInSpec, nil
	}

	return nil, errors.Errorf(`Cannot find container "%s" in the pod "%s"`, containerName, pod.Name)
}
