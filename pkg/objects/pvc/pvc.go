package pvc

import (
	"github.com/nbspawn/nbspawn/pkg/util/maputil"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StorageClassAnnotation selects the storage class for claims on clusters
// that still bind classes via the beta annotation.
const StorageClassAnnotation = "volume.beta.kubernetes.io/storage-class"

type Properties struct {
	// Name of the claim. Must be a valid DNS label, unique within the
	// target namespace.
	Name string `json:"name"`
	// StorageClass to bind the claim to, empty leaves the cluster default.
	StorageClass string `json:"storageClass,omitempty"`
	// AccessModes the pod needs towards the claim.
	AccessModes []corev1.PersistentVolumeAccessMode `json:"accessModes,omitempty"`
	// Storage is the requested size as a quantity string, e.g. "10Gi".
	Storage string `json:"storage"`
	// Labels to add to the claim.
	Labels map[string]string `json:"labels,omitempty"`
}

// Build assembles the persistent volume claim for one notebook user. The
// annotation map is always initialized, callers extend it after the fact.
func Build(props Properties) (*corev1.PersistentVolumeClaim, error) {
	storage, err := resource.ParseQuantity(props.Storage)
	if err != nil {
		return nil, errors.Wrapf(err, `malformed storage quantity "%s"`, props.Storage)
	}

	var claim corev1.PersistentVolumeClaim

	claim.Kind = "PersistentVolumeClaim"
	claim.APIVersion = "v1"
	claim.ObjectMeta = metav1.ObjectMeta{
		Name:        props.Name,
		Annotations: buildAnnotations(props),
		Labels:      maputil.MergeMap(props.Labels),
	}
	claim.Spec = corev1.PersistentVolumeClaimSpec{
		AccessModes: props.AccessModes,
		Resources: corev1.VolumeResourceRequirements{
			Requests: corev1.ResourceList{
				corev1.ResourceStorage: storage,
			},
		},
	}

	return &claim, nil
}

func buildAnnotations(props Properties) map[string]string {
	annotations := map[string]string{}
	if props.StorageClass != "" {
		annotations[StorageClassAnnotation] = props.StorageClass
	}

	return annotations
}
