package api

// Service accessors group Client methods by API area. Each service embeds
// *Client, so a service value is as cheap to create as a method call.

type VersionService struct{ *Client }

type SitesService struct{ *Client }

type EquipmentService struct{ *Client }

type AccountsService struct{ *Client }

func (c *Client) Version() VersionService {
	return VersionService{c}
}

func (c *Client) Sites() SitesService {
	return SitesService{c}
}

func (c *Client) Equipment() EquipmentService {
	return EquipmentService{c}
}

func (c *Client) Accounts() AccountsService {
	return AccountsService{c}
}
