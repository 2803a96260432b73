// Package surge applies declarative multi-service project specs: it
// resolves images, creates networks and volumes, and starts capsules in
// dependency order through the cluster manager. Down and Kill stop a
// project's services in reverse dependency order, graceful and immediate
// respectively.
package surge
