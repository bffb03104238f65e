package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func validVoterBody(voterID, aadhaar string) gin.H {
	return gin.H{
		"voterId":       voterID,
		"aadhaarNumber": aadhaar,
		"name":          "Test Voter",
		"password":      "secret",
		"dob":           "01/01/1990",
		"age":           36,
		"email":         "test@example.com",
		"gender":        "Female",
		"address":       "12 Test Lane",
		"state":         "Karnataka",
		"district":      "Bangalore Urban",
		"pincode":       "560001",
		"maritalStatus": "Single",
	}
}

func TestVoterAccessControl(t *testing.T) {
	e := newEnv(t)
	voterToken := e.loginVoter(t, "ABCD1234567", "15/08/1985")

	t.Run("voter reads own record", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/voters/ABCD1234567", voterToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := e.decode(t, w)
		if body["name"] != "Rahul Kumar" {
			t.Errorf("unexpected name: %v", body["name"])
		}
		if _, leaked := body["password"]; leaked {
			t.Error("password hash leaked in response")
		}
	})

	t.Run("voter cannot read another voter", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/voters/EFGH9876543", voterToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin reads any voter", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/voters/EFGH9876543", e.loginAdmin(t), nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("listing requires admin", func(t *testing.T) {
		if w := e.do(t, http.MethodGet, "/api/voters", voterToken, nil); w.Code != http.StatusForbidden {
			t.Errorf("voter token: expected 403, got %d", w.Code)
		}
		if w := e.do(t, http.MethodGet, "/api/voters", "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("no token: expected 401, got %d", w.Code)
		}
		w := e.do(t, http.MethodGet, "/api/voters", e.loginAdmin(t), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("admin token: expected 200, got %d", w.Code)
		}
		var voters []json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &voters); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(voters) != 2 {
			t.Errorf("expected 2 seeded voters, got %d", len(voters))
		}
	})
}

func TestVoterCreate(t *testing.T) {
	e := newEnv(t)
	adminToken := e.loginAdmin(t)

	t.Run("admin creates a voter who can then log in", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/voters", adminToken, validVoterBody("WXYZ1111111", "999988887777"))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := e.decode(t, w)
		if body["hasVoted"] != false {
			t.Errorf("new voter must start unvoted, got %v", body["hasVoted"])
		}

		login := e.do(t, http.MethodPost, "/api/auth/voter/login", "", gin.H{
			"voterId": "WXYZ1111111", "password": "secret",
		})
		if login.Code != http.StatusOK {
			t.Errorf("new voter login failed: %d %s", login.Code, login.Body.String())
		}
	})

	t.Run("duplicate voter id is rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/voters", adminToken, validVoterBody("ABCD1234567", "111100002222"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing required field is rejected", func(t *testing.T) {
		body := validVoterBody("QQQQ0000001", "333344445555")
		delete(body, "dob")
		w := e.do(t, http.MethodPost, "/api/voters", adminToken, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("voter token cannot create", func(t *testing.T) {
		token := e.loginVoter(t, "ABCD1234567", "15/08/1985")
		w := e.do(t, http.MethodPost, "/api/voters", token, validVoterBody("RRRR0000001", "666677778888"))
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

func TestVoterUpdateAndDelete(t *testing.T) {
	e := newEnv(t)
	adminToken := e.loginAdmin(t)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		w := e.do(t, http.MethodPut, "/api/voters/1", adminToken, gin.H{"district": "Mysuru"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := e.decode(t, w)
		if body["district"] != "Mysuru" {
			t.Errorf("district not updated: %v", body["district"])
		}
		if body["name"] != "Rahul Kumar" {
			t.Errorf("untouched field changed: %v", body["name"])
		}
	})

	t.Run("updated password replaces the old one", func(t *testing.T) {
		w := e.do(t, http.MethodPut, "/api/voters/1", adminToken, gin.H{"password": "newpass"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		old := e.do(t, http.MethodPost, "/api/auth/voter/login", "", gin.H{
			"voterId": "ABCD1234567", "password": "15/08/1985",
		})
		if old.Code != http.StatusUnauthorized {
			t.Errorf("old password still accepted: %d", old.Code)
		}
		e.loginVoter(t, "ABCD1234567", "newpass")
	})

	t.Run("update of unknown id", func(t *testing.T) {
		w := e.do(t, http.MethodPut, "/api/voters/999", adminToken, gin.H{"district": "Mysuru"})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete removes the voter", func(t *testing.T) {
		w := e.do(t, http.MethodDelete, "/api/voters/2", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if again := e.do(t, http.MethodDelete, "/api/voters/2", adminToken, nil); again.Code != http.StatusNotFound {
			t.Errorf("second delete: expected 404, got %d", again.Code)
		}
		lookup := e.do(t, http.MethodGet, "/api/voters/EFGH9876543", adminToken, nil)
		if lookup.Code != http.StatusNotFound {
			t.Errorf("deleted voter still readable: %d", lookup.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := e.do(t, http.MethodPut, "/api/voters/abc", adminToken, gin.H{"district": "Mysuru"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
