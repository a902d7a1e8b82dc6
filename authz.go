// © 2025 Vlad-Stefan Harbuz <vlad@vlad.website>
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
)

type capability int

const (
	capTransitionOrder capability = iota
	capTransitionDonation
	capManagePayments
	capEditListing
)

// resource is what authorization decisions are made against: the owning
// organization and, for listing-bound things, the assigned volunteer.
type resource struct {
	OrganizationId string
	VolunteerId    *string
}

func orderResource(order Order) resource {
	return resource{OrganizationId: order.OrganizationId, VolunteerId: order.VolunteerId}
}

func listingResource(listing Listing) resource {
	return resource{OrganizationId: listing.OrganizationId, VolunteerId: listing.VolunteerId}
}

func organizationResource(organizationId string) resource {
	return resource{OrganizationId: organizationId}
}

// authorize reports whether actor may exercise c on res. Super admins and
// organization admins may do anything within their organization; the
// volunteer assigned to a listing may only move its orders along.
func (s *server) authorize(ctx context.Context, actor Actor, c capability, res resource) (bool, error) {
	if actor.Id == "" {
		return false, nil
	}
	if actor.Role == RoleSuperAdmin {
		return true, nil
	}
	if c == capTransitionOrder && res.VolunteerId != nil && *res.VolunteerId == actor.Id {
		return true, nil
	}
	if res.OrganizationId == "" {
		return false, nil
	}
	return s.store.IsOrganizationAdmin(ctx, res.OrganizationId, actor.Id)
}

// requireCapability is authorize turned into an AuthorizationError carrying
// msg when the actor is turned away.
func (s *server) requireCapability(ctx context.Context, actor Actor, c capability, res resource, msg string) error {
	allowed, err := s.authorize(ctx, actor, c, res)
	if err != nil {
		return err
	}
	if !allowed {
		return &AuthorizationError{Msg: msg}
	}
	return nil
}
