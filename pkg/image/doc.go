/*
Package image resolves "[registry/]name[:tag]" references to ImageManifests, pulling through pkg/capsule's containerd client on a cache
miss and copying each layer and the image config into pkg/cas.

A reference's canonical form (registry defaulted to DefaultRegistry,
tag defaulted to DefaultTag) indexes a manifest digest in pkg/storage's
image_refs bucket. The manifest itself is a newline-separated
"name:digest" blob in CAS, the same convention pkg/buildcache uses for
build output manifests, so both components share one small manifest
format. An image counts as materialized only when its manifest's config
digest and every layer digest still resolve in CAS; a stale index entry
whose blobs were garbage-collected triggers a fresh pull rather than
returning a manifest pointing at missing content.
*/
package image
