package pb

import "google.golang.org/protobuf/encoding/protowire"

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (x *RegisterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *RegisterRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *RegisterRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Name)
	b = appendString(b, 2, x.Email)
	b = appendString(b, 3, x.Password)
	b = appendString(b, 4, x.Role)
	return b, nil
}

func (x *RegisterRequest) UnmarshalWire(b []byte) error {
	*x = RegisterRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Name)
		case 2:
			return consumeString(typ, b, &x.Email)
		case 3:
			return consumeString(typ, b, &x.Password)
		case 4:
			return consumeString(typ, b, &x.Role)
		}
		return skipField(num, typ, b)
	})
}

type LoginRequest struct {
	Email    string
	Password string
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *LoginRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Email)
	b = appendString(b, 2, x.Password)
	return b, nil
}

func (x *LoginRequest) UnmarshalWire(b []byte) error {
	*x = LoginRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Email)
		case 2:
			return consumeString(typ, b, &x.Password)
		}
		return skipField(num, typ, b)
	})
}

// UserInfo is the public projection of an account. Timestamps are unix
// milliseconds.
type UserInfo struct {
	Id        string
	Name      string
	Email     string
	Role      string
	Expertise []string
	Bio       string
	CreatedAt int64
	UpdatedAt int64
}

func (x *UserInfo) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UserInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UserInfo) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *UserInfo) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *UserInfo) GetExpertise() []string {
	if x != nil {
		return x.Expertise
	}
	return nil
}

func (x *UserInfo) GetBio() string {
	if x != nil {
		return x.Bio
	}
	return ""
}

func (x *UserInfo) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *UserInfo) GetUpdatedAt() int64 {
	if x != nil {
		return x.UpdatedAt
	}
	return 0
}

func (x *UserInfo) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Id)
	b = appendString(b, 2, x.Name)
	b = appendString(b, 3, x.Email)
	b = appendString(b, 4, x.Role)
	for _, e := range x.Expertise {
		// repeated fields keep empty elements
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendString(b, e)
	}
	b = appendString(b, 6, x.Bio)
	b = appendInt64(b, 7, x.CreatedAt)
	b = appendInt64(b, 8, x.UpdatedAt)
	return b, nil
}

func (x *UserInfo) UnmarshalWire(b []byte) error {
	*x = UserInfo{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Id)
		case 2:
			return consumeString(typ, b, &x.Name)
		case 3:
			return consumeString(typ, b, &x.Email)
		case 4:
			return consumeString(typ, b, &x.Role)
		case 5:
			var e string
			n, err := consumeString(typ, b, &e)
			if err == nil {
				x.Expertise = append(x.Expertise, e)
			}
			return n, err
		case 6:
			return consumeString(typ, b, &x.Bio)
		case 7:
			return consumeInt64(typ, b, &x.CreatedAt)
		case 8:
			return consumeInt64(typ, b, &x.UpdatedAt)
		}
		return skipField(num, typ, b)
	})
}

type AuthResponse struct {
	AccessToken  string
	RefreshToken string
	User         *UserInfo
}

func (x *AuthResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *AuthResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *AuthResponse) GetUser() *UserInfo {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *AuthResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.AccessToken)
	b = appendString(b, 2, x.RefreshToken)
	if x.User != nil {
		var err error
		if b, err = appendMessage(b, 3, x.User); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (x *AuthResponse) UnmarshalWire(b []byte) error {
	*x = AuthResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.AccessToken)
		case 2:
			return consumeString(typ, b, &x.RefreshToken)
		case 3:
			x.User = &UserInfo{}
			return consumeMessage(typ, b, x.User)
		}
		return skipField(num, typ, b)
	})
}

type GetCurrentUserRequest struct{}

func (x *GetCurrentUserRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (x *GetCurrentUserRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, skipField)
}

type GetCurrentUserResponse struct {
	User *UserInfo
}

func (x *GetCurrentUserResponse) GetUser() *UserInfo {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *GetCurrentUserResponse) MarshalWire() ([]byte, error) {
	if x.User == nil {
		return nil, nil
	}
	return appendMessage(nil, 1, x.User)
}

func (x *GetCurrentUserResponse) UnmarshalWire(b []byte) error {
	*x = GetCurrentUserResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			x.User = &UserInfo{}
			return consumeMessage(typ, b, x.User)
		}
		return skipField(num, typ, b)
	})
}

type RefreshTokenRequest struct {
	RefreshToken string
}

func (x *RefreshTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *RefreshTokenRequest) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, x.RefreshToken), nil
}

func (x *RefreshTokenRequest) UnmarshalWire(b []byte) error {
	*x = RefreshTokenRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &x.RefreshToken)
		}
		return skipField(num, typ, b)
	})
}

type RefreshTokenResponse struct {
	AccessToken  string
	RefreshToken string
}

func (x *RefreshTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *RefreshTokenResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *RefreshTokenResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.AccessToken)
	b = appendString(b, 2, x.RefreshToken)
	return b, nil
}

func (x *RefreshTokenResponse) UnmarshalWire(b []byte) error {
	*x = RefreshTokenResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.AccessToken)
		case 2:
			return consumeString(typ, b, &x.RefreshToken)
		}
		return skipField(num, typ, b)
	})
}

type LogoutRequest struct {
	RefreshToken string
}

func (x *LogoutRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *LogoutRequest) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, x.RefreshToken), nil
}

func (x *LogoutRequest) UnmarshalWire(b []byte) error {
	*x = LogoutRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &x.RefreshToken)
		}
		return skipField(num, typ, b)
	})
}

type LogoutResponse struct{}

func (x *LogoutResponse) MarshalWire() ([]byte, error) { return nil, nil }

func (x *LogoutResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, skipField)
}

type PingRequest struct{}

func (x *PingRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (x *PingRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, skipField)
}

type PingResponse struct {
	Status string
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *PingResponse) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, x.Status), nil
}

func (x *PingResponse) UnmarshalWire(b []byte) error {
	*x = PingResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &x.Status)
		}
		return skipField(num, typ, b)
	})
}
